// Package asio defines the control surface of an ASIO driver.
//
// [Driver] mirrors the IASIO interface exposed by every ASIO driver: host
// initialization, identification, start/stop, channel and latency queries,
// buffer size negotiation, sample rate and clock source control, and buffer
// creation. The types in this package are the Go-side view of the driver's
// C structures; the activation package converts them to the driver's memory
// layout.
//
// Driver calls that return an ASIO status report it as an [Error]. A nil
// error means the driver returned ASE_OK.
package asio
