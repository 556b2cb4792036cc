package carbon

type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownCategory indicates an entry whose category has no emission factor.
// Entries are validated on creation, so this points at a configuration error.
var ErrUnknownCategory = constError("unknown category")
