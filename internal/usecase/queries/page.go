package queries

// Page is offset pagination: the caller supplies a page index and size, the
// store sees limit/offset. Index and size are validated at the HTTP boundary,
// not here.
type Page struct {
	Index int
	Size  int
}

func NewPage(index, size int) Page {
	return Page{Index: index, Size: size}
}

func (p Page) Limit() uint64 {
	return uint64(p.Size)
}

func (p Page) Offset() uint64 {
	return uint64(p.Index) * uint64(p.Size)
}
