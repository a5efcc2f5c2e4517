package layout

type Text string

// Comment covers <!-- comments -->, <!DOCTYPE ...> and <?...?> declarations, none of them make it into the tree.
type Comment string

type StartTag struct {
	Name        string
	Attributes  Attributes
	SelfClosing bool
}

type EndTag struct {
	Name string
}
