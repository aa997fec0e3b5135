package common

const (
	WindowTitle = "Roof Hopper"
	DefaultTPS  = 60
)
