package entity

import "io"

// File is an incoming upload before any storage happened.
type File struct {
	Name string
	Mime string
	Size int64
	Body io.Reader
}
