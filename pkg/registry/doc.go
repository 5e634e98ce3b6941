// Package registry enumerates the ASIO drivers installed on the host.
//
// Drivers register themselves under HKEY_LOCAL_MACHINE\SOFTWARE\ASIO, one
// sub-key per driver, with a CLSID value naming the driver class and an
// optional Description value. The class identifier in turn resolves to the
// driver module through HKEY_CLASSES_ROOT\CLSID\{id}\InprocServer32.
//
// The Scanner reads both tables through the Store interface so the same
// validation runs against the Windows registry (WindowsStore) and against an
// in-memory tree (MemoryStore) loaded from a YAML fixture.
//
// An entry becomes a Descriptor only when its identity parses, its loader
// path resolves and the module file can be opened. Everything else is logged
// and skipped.
package registry
