package timetable

import "errors"

var (
	ErrInvalidLayout = errors.New("invalid layout")
	ErrShortBuffer   = errors.New("short buffer")
	ErrInvalidName   = errors.New("invalid name")
)
