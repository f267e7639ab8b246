package advanced

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/osuushi/geom2d/dbg"
)

// R-tree node fan-out.
const (
	indexMinChildren = 25
	indexMaxChildren = 50
)

// Every indexed and queried box grows by this much on each side. The tree
// treats touching boxes as disjoint, and a flat box has no extent at all.
const indexPadding = Tolerance

// IndexEntry is the handle returned by ShapeIndex.Insert. The box is captured
// at insertion time: a shape mutated afterwards must be removed and inserted
// again.
type IndexEntry struct {
	Shape Shape
	rect  rtreego.Rect
}

func (e *IndexEntry) Bounds() rtreego.Rect { return e.rect }

func (e *IndexEntry) String() string {
	return fmt.Sprintf("%s%v", dbg.Name(e), e.Shape)
}

// ShapeIndex is a two dimensional R-tree over shape bounding boxes. Queries
// use the boxes as a broad phase and the exact shape predicates after that.
// Not safe for concurrent use.
type ShapeIndex struct {
	tree *rtreego.Rtree
}

func NewShapeIndex() *ShapeIndex {
	return &ShapeIndex{tree: rtreego.NewTree(2, indexMinChildren, indexMaxChildren)}
}

func toRtreeRect(r Rectangle) rtreego.Rect {
	rect, err := rtreego.NewRect(
		rtreego.Point{r.minX - indexPadding, r.minY - indexPadding},
		[]float64{r.Width() + 2*indexPadding, r.Height() + 2*indexPadding},
	)
	if err != nil {
		fatalf("cannot index box %v: %v", r, err)
	}
	return rect
}

func (idx *ShapeIndex) Insert(shape Shape) *IndexEntry {
	entry := &IndexEntry{Shape: shape, rect: toRtreeRect(shape.BoundingBox())}
	idx.tree.Insert(entry)
	Logger().Debug("indexed shape", "entry", entry.String())
	return entry
}

// Remove reports whether the entry was in the index.
func (idx *ShapeIndex) Remove(entry *IndexEntry) bool {
	return idx.tree.Delete(entry)
}

func (idx *ShapeIndex) Len() int {
	return idx.tree.Size()
}

func (idx *ShapeIndex) search(box Rectangle, keep func(*IndexEntry) bool) []*IndexEntry {
	var result []*IndexEntry
	for _, spatial := range idx.tree.SearchIntersect(toRtreeRect(box)) {
		entry := spatial.(*IndexEntry)
		if keep(entry) {
			result = append(result, entry)
		}
	}
	return result
}

// Query returns the entries whose shape intersects the given shape.
func (idx *ShapeIndex) Query(shape Shape) []*IndexEntry {
	return idx.search(shape.BoundingBox(), func(entry *IndexEntry) bool {
		return Intersects(shape, entry.Shape)
	})
}

// ContainingPoint returns the entries whose shape contains (x,y).
func (idx *ShapeIndex) ContainingPoint(x, y float64) []*IndexEntry {
	return idx.search(*NewRectangleFromCorners(x, y, x, y), func(entry *IndexEntry) bool {
		return entry.Shape.Contains(x, y)
	})
}

// Nearest returns the entry whose bounding box is the nearest to (x,y), or nil
// if the index is empty.
func (idx *ShapeIndex) Nearest(x, y float64) *IndexEntry {
	spatial := idx.tree.NearestNeighbor(rtreego.Point{x, y})
	if spatial == nil {
		return nil
	}
	return spatial.(*IndexEntry)
}
