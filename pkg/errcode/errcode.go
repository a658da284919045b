package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Record model errors
	SchemaError
	UnknownElementError

	// Render errors
	UnknownSymbolError
	MissingMassError
	RenderOptionError

	// Builder errors
	IncompleteBuildError
	UnsupportedPairStyleError
	BuildInputError
	BuildSpecError

	// Store errors
	StoreDirError
	StoreRecordNotFoundError
	StoreDecodeError
	StoreEncodeError

	// Files errors
	FilesSourceNotFoundError
	FilesCopyError
	FilesNameError

	// CLI errors
	FlagValueError
)
