// Package clsid provides the 16-byte class identifier used to name an
// installed ASIO driver.
//
// An [ID] has the exact memory layout of a Windows GUID (Data1, Data2, Data3,
// Data4) so it can be handed to the component activation service without
// conversion. Two IDs are equal when their bytes are equal, which makes ID
// usable directly as a map key.
//
// Registry values carry identifiers in the braced textual form:
//
//	{8B3D2B0A-F3F2-4A73-A8C1-3A62D59F6A10}
//
// [Parse] accepts that form as well as the bare and URN forms.
package clsid
