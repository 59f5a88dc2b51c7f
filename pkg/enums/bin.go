package enums

import "fmt"

// BinType maps to the waste category a bin accepts.
type BinType string

const (
	BinTypePaper   BinType = "paper"
	BinTypePlastic BinType = "plastic"
	BinTypeMetal   BinType = "metal"
)

var validBinTypes = []BinType{
	BinTypePaper,
	BinTypePlastic,
	BinTypeMetal,
}

func (b BinType) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BinType.
func (b BinType) IsValid() bool {
	for _, candidate := range validBinTypes {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBinType converts raw input into a BinType.
func ParseBinType(value string) (BinType, error) {
	for _, candidate := range validBinTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid bin type %q", value)
}

// BinStatus tracks a bin's lifecycle. Bins are never deleted; removal is the
// inactive status, and workers flag overflowing bins as full.
type BinStatus string

const (
	BinStatusActive   BinStatus = "active"
	BinStatusInactive BinStatus = "inactive"
	BinStatusFull     BinStatus = "full"
)

var validBinStatuses = []BinStatus{
	BinStatusActive,
	BinStatusInactive,
	BinStatusFull,
}

func (b BinStatus) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BinStatus.
func (b BinStatus) IsValid() bool {
	for _, candidate := range validBinStatuses {
		if candidate == b {
			return true
		}
	}
	return false
}
