// Package activation instantiates ASIO drivers by class identifier.
//
// An [Activator] owns the interop runtime (COM on Windows) and creates driver
// objects. Every created [Object] carries a platform reference count that
// starts at one; AddRef and Release adjust it and the object is destroyed when
// it reaches zero.
//
// Two activators are provided:
//
//   - [COMActivator] initializes COM and calls CoCreateInstance with the
//     driver's class identifier as both class and interface identifier, the
//     way ASIO hosts load drivers. Driver methods are invoked through the
//     IASIO vtable. It is only functional on windows/amd64.
//   - [SimulatedActivator] creates in-process drivers from a [DriverSpec]. It
//     tracks platform reference counts so callers can verify teardown.
package activation
