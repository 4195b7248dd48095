package core

// Parameter describes a single viewer setting as a label/value pair.
type Parameter struct {
	Label string
	Value string
}

// Snapshot captures the settings shown on the overlay each frame.
type Snapshot struct {
	Params []Parameter
}
