package clsid

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"

	"github.com/google/uuid"
)

// ErrInvalid is returned when a string cannot be parsed as a class identifier.
var ErrInvalid = errors.New("invalid class identifier")

// Size is the size of an ID in bytes.
const Size = 16

// ID is a globally unique class identifier with the Windows GUID layout.
type ID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// The activation service reads IDs by address, so the layout must be exactly
// 16 bytes with no padding. Either constant overflows if it is not.
const (
	_ = uint(Size - unsafe.Sizeof(ID{}))
	_ = uint(unsafe.Sizeof(ID{}) - Size)
)

// Nil is the zero identifier.
var Nil ID

// Parse parses s as a class identifier.
//
// The braced registry form, the bare 36-character form, the URN form and the
// 32-character hex form are accepted.
func Parse(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return FromUUID(u), nil
}

// MustParse is like Parse but panics if s is invalid.
// It is intended for package-level identifiers in tests and tables.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromUUID converts an RFC 4122 UUID (big-endian fields) to an ID.
func FromUUID(u uuid.UUID) ID {
	var id ID
	id.Data1 = binary.BigEndian.Uint32(u[0:4])
	id.Data2 = binary.BigEndian.Uint16(u[4:6])
	id.Data3 = binary.BigEndian.Uint16(u[6:8])
	copy(id.Data4[:], u[8:16])
	return id
}

// UUID returns the identifier as an RFC 4122 UUID.
func (id ID) UUID() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], id.Data1)
	binary.BigEndian.PutUint16(u[4:6], id.Data2)
	binary.BigEndian.PutUint16(u[6:8], id.Data3)
	copy(u[8:16], id.Data4[:])
	return u
}

// Bytes returns the in-memory GUID representation: the three leading fields
// little-endian, followed by Data4.
func (id ID) Bytes() [Size]byte {
	var b [Size]byte
	binary.LittleEndian.PutUint32(b[0:4], id.Data1)
	binary.LittleEndian.PutUint16(b[4:6], id.Data2)
	binary.LittleEndian.PutUint16(b[6:8], id.Data3)
	copy(b[8:16], id.Data4[:])
	return b
}

// FromBytes is the inverse of Bytes.
func FromBytes(b [Size]byte) ID {
	var id ID
	id.Data1 = binary.LittleEndian.Uint32(b[0:4])
	id.Data2 = binary.LittleEndian.Uint16(b[4:6])
	id.Data3 = binary.LittleEndian.Uint16(b[6:8])
	copy(id.Data4[:], b[8:16])
	return id
}

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Hash returns a 64-bit FNV-1a hash of Bytes.
// The result does not depend on host endianness or alignment.
func (id ID) Hash() uint64 {
	b := id.Bytes()
	h := uint64(fnvOffset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

// IsZero reports whether id is the nil identifier.
func (id ID) IsZero() bool {
	return id == Nil
}

// String returns the braced upper-case form used by the registry.
func (id ID) String() string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		id.Data1, id.Data2, id.Data3,
		id.Data4[0], id.Data4[1],
		id.Data4[2], id.Data4[3], id.Data4[4], id.Data4[5], id.Data4[6], id.Data4[7])
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
