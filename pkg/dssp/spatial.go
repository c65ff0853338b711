// 9 Mar 2021
// Find close CA pairs with a k-d tree instead of looking at all of them.

package dssp

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// caPoint is an alpha carbon in nm, remembering which residue it came from.
type caPoint struct {
	x    [3]float64
	ires int
}

func (p caPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(caPoint)
	return p.x[d] - q.x[d]
}

func (p caPoint) Dims() int { return 3 }

// Distance is squared, as kdtree wants.
func (p caPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(caPoint)
	var sum float64
	for d := range p.x {
		dd := p.x[d] - q.x[d]
		sum += dd * dd
	}
	return sum
}

type caPoints []caPoint

func (p caPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p caPoints) Len() int                              { return len(p) }
func (p caPoints) Pivot(d kdtree.Dim) int                { return caPlane{caPoints: p, Dim: d}.Pivot() }
func (p caPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// caPlane lets the points be sorted along one dimension.
type caPlane struct {
	kdtree.Dim
	caPoints
}

func (p caPlane) Less(i, j int) bool { return p.caPoints[i].x[p.Dim] < p.caPoints[j].x[p.Dim] }
func (p caPlane) Pivot() int         { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p caPlane) Swap(i, j int)      { p.caPoints[i], p.caPoints[j] = p.caPoints[j], p.caPoints[i] }
func (p caPlane) Slice(start, end int) kdtree.SortSlicer {
	p.caPoints = p.caPoints[start:end]
	return p
}

func newCAPoint(r *bbRes, i int) caPoint {
	v := r3.Scale(ang2nm, r.ca)
	return caPoint{x: [3]float64{v.X, v.Y, v.Z}, ires: i}
}

// slack widens the tree search a little. Every candidate is checked again
// with caDist2, so the tree cannot change which pairs are accepted.
const slack = 1e-6

// eachNearPairTree does the same job as eachNearPair, calling fn in the
// same order, but only looks at neighbours found in a k-d tree.
func eachNearPairTree(res []bbRes, cut2 float64, fn func(i, j int)) {
	pts := make(caPoints, 0, len(res))
	for i := range res {
		if res[i].ok {
			pts = append(pts, newCAPoint(&res[i], i))
		}
	}
	tree := kdtree.New(pts, false)
	var near []int
	for i := range res {
		if !res[i].ok {
			continue
		}
		keep := kdtree.NewDistKeeper(cut2 + slack)
		tree.NearestSet(keep, newCAPoint(&res[i], i))
		near = near[:0]
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			if j := c.Comparable.(caPoint).ires; j > i {
				near = append(near, j)
			}
		}
		sort.Ints(near)
		for _, j := range near {
			if caDist2(&res[i], &res[j]) < cut2 {
				fn(i, j)
			}
		}
	}
}
