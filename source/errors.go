package source

import (
	"github.com/spacemonkeygo/errors"
)

var Error *errors.ErrorClass = errors.NewClass("SourceError") // grouping, do not instantiate

/*
	Indicates the named input could not be opened for reading.
	Examples include a name that doesn't exist, or one that exists
	but denies us read permission.
*/
var OpenError *errors.ErrorClass = Error.NewClass("SourceOpenError")
