package suffixtree

// NodeID indexes the node arena. Ids are stable for the life of a Tree.
type NodeID int

const (
	// Root is the id of the root node.
	Root NodeID = 0

	// noLink marks a node without a suffix link (root and leaves).
	noLink NodeID = -1
)

// Edge is a labeled arc Start→End. The label is Text(Read)[First:Last+1] of
// the read store; edges reference read text and never copy it.
type Edge struct {
	Read  int    // read owning the label text
	First int    // offset of the first label byte (inclusive)
	Last  int    // offset of the last label byte (inclusive)
	Start NodeID // origin node
	End   NodeID // node the edge leads to
}

// Len returns the label length.
func (e Edge) Len() int { return e.Last - e.First + 1 }

// Mark records that suffix Pos of read Read ends at a leaf. Pos == 0 means
// the whole read spells the path to that leaf.
type Mark struct {
	Read int
	Pos  int
}

// node is one arena slot.
type node struct {
	link     NodeID // suffix link, internal nodes only
	depth    int    // string depth of the path from the root, set by annotate
	terminal []int  // reads with a length-1 sentinel edge leaving this node
	marks    []Mark // suffixes ending at this leaf
}

// activePoint is Ukkonen's cursor: origin plus the implicit interval
// [first, last] into the read being inserted. first > last means the point
// sits exactly on origin.
type activePoint struct {
	read   int
	origin NodeID
	first  int
	last   int
}

func (a *activePoint) explicit() bool { return a.first > a.last }

func (a *activePoint) length() int { return a.last - a.first + 1 }
