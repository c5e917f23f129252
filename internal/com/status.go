package com

import "fmt"

// Status is a signed 32-bit result code. Negative values are failures.
type Status int32

// Success codes.
const (
	OK    Status = 0
	False Status = 1
)

// Generic failure codes.
const (
	NotImpl     Status = 0x80004001 - 1<<32
	NoInterface Status = 0x80004002 - 1<<32
	Pointer     Status = 0x80004003 - 1<<32
	Abort       Status = 0x80004004 - 1<<32
	Fail        Status = 0x80004005 - 1<<32
	Unexpected  Status = 0x8000FFFF - 1<<32
	OutOfMemory Status = 0x8007000E - 1<<32
	InvalidArg  Status = 0x80070057 - 1<<32
)

// Rendering engine failure codes.
const (
	WrongState             Status = 0x88990001 - 1<<32
	NotInitialized         Status = 0x88990002 - 1<<32
	UnsupportedOperation   Status = 0x88990003 - 1<<32
	ZeroVector             Status = 0x88990007 - 1<<32
	InternalError          Status = 0x88990008 - 1<<32
	InvalidCall            Status = 0x8899000A - 1<<32
	NoHardwareDevice       Status = 0x8899000B - 1<<32
	RecreateTarget         Status = 0x8899000C - 1<<32
	MaxTextureSizeExceeded Status = 0x8899000F - 1<<32
	BadNumber              Status = 0x88990011 - 1<<32
	WrongFactory           Status = 0x88990012 - 1<<32
	LayerAlreadyInUse      Status = 0x88990013 - 1<<32
	PopCallDidNotMatchPush Status = 0x88990014 - 1<<32
	WrongResourceDomain    Status = 0x88990015 - 1<<32
	PushPopUnbalanced      Status = 0x88990016 - 1<<32
	UnsupportedPixelFormat Status = 0x88982F80 - 1<<32
)

var statusNames = map[Status]string{
	OK:                     "OK",
	False:                  "FALSE",
	NotImpl:                "not implemented",
	NoInterface:            "no such interface",
	Pointer:                "invalid pointer",
	Abort:                  "operation aborted",
	Fail:                   "unspecified failure",
	Unexpected:             "unexpected failure",
	OutOfMemory:            "out of memory",
	InvalidArg:             "invalid argument",
	WrongState:             "object is in the wrong state",
	NotInitialized:         "object not initialized",
	UnsupportedOperation:   "unsupported operation",
	ZeroVector:             "zero vector",
	InternalError:          "internal error",
	InvalidCall:            "invalid call",
	NoHardwareDevice:       "no hardware device",
	RecreateTarget:         "render target must be recreated",
	MaxTextureSizeExceeded: "maximum texture size exceeded",
	BadNumber:              "bad number",
	WrongFactory:           "resource created by a different factory",
	LayerAlreadyInUse:      "layer already in use",
	PopCallDidNotMatchPush: "pop call did not match push",
	WrongResourceDomain:    "resource used in the wrong resource domain",
	PushPopUnbalanced:      "push and pop calls unbalanced",
	UnsupportedPixelFormat: "unsupported pixel format",
}

// Succeeded reports whether s is a success code.
func (s Status) Succeeded() bool { return s >= 0 }

// Failed reports whether s is a failure code.
func (s Status) Failed() bool { return s < 0 }

// String returns a short description of s, or its hexadecimal value
// when the code is unknown.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(s))
}

// Error implements the error interface.
func (s Status) Error() string {
	return fmt.Sprintf("status %#08x: %s", uint32(s), s.String())
}
