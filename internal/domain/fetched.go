package domain

// FetchedFile is a resolved, verified output file ready to stream.
// Cleanup removes the scratch directory that owns the file; the caller
// must invoke it once the response has been fully sent, or on any
// failure after the fetch returned.
type FetchedFile struct {
	Token    string
	Path     string
	Name     string
	MIME     string
	Size     int64
	Title    string
	Duration float64

	Cleanup func() error
}
