//go:build windows && amd64

package activation

import (
	"errors"
	"math"
	"runtime"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"

	"github.com/sbaudio/asio-go/pkg/asio"
	"github.com/sbaudio/asio-go/pkg/clsid"
)

// sFalse is returned by CoInitializeEx when the thread already joined the
// apartment; it still has to be balanced by CoUninitialize.
const sFalse = 1

// COMActivator loads ASIO drivers as in-process COM servers.
//
// COM is initialized apartment-threaded, so Initialize locks the calling
// goroutine to its OS thread until the matching Uninitialize. All driver
// calls must be made from that goroutine.
type COMActivator struct{}

// NewCOMActivator creates a COM activator.
func NewCOMActivator() *COMActivator {
	return &COMActivator{}
}

// Initialize joins the calling thread to a single-threaded COM apartment.
func (a *COMActivator) Initialize() error {
	runtime.LockOSThread()
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if errors.As(err, &oleErr) && oleErr.Code() == sFalse {
			return nil
		}
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Uninitialize leaves the COM apartment.
func (a *COMActivator) Uninitialize() {
	ole.CoUninitialize()
	runtime.UnlockOSThread()
}

// Activate creates the driver's COM object. ASIO drivers expose IASIO under
// their own class identifier, so id is passed as both CLSID and IID.
func (a *COMActivator) Activate(id clsid.ID) (Object, error) {
	guid := &ole.GUID{Data1: id.Data1, Data2: id.Data2, Data3: id.Data3, Data4: id.Data4}
	unk, err := ole.CreateInstance(guid, guid)
	if err != nil {
		return nil, err
	}
	return &comDriver{unk: unk}, nil
}

var _ Activator = (*COMActivator)(nil)

// iasioVtbl is the IASIO virtual table, in declaration order.
type iasioVtbl struct {
	ole.IUnknownVtbl
	Init              uintptr
	GetDriverName     uintptr
	GetDriverVersion  uintptr
	GetErrorMessage   uintptr
	Start             uintptr
	Stop              uintptr
	GetChannels       uintptr
	GetLatencies      uintptr
	GetBufferSize     uintptr
	CanSampleRate     uintptr
	GetSampleRate     uintptr
	SetSampleRate     uintptr
	GetClockSources   uintptr
	SetClockSource    uintptr
	GetSamplePosition uintptr
	GetChannelInfo    uintptr
	CreateBuffers     uintptr
	DisposeBuffers    uintptr
	ControlPanel      uintptr
	Future            uintptr
	OutputReady       uintptr
}

type rawClockSource struct {
	Index             int32
	AssociatedChannel int32
	AssociatedGroup   int32
	IsCurrentSource   int32
	Name              [32]byte
}

type rawChannelInfo struct {
	Channel      int32
	IsInput      int32
	IsActive     int32
	ChannelGroup int32
	Type         int32
	Name         [32]byte
}

type rawBufferInfo struct {
	IsInput    int32
	ChannelNum int32
	Buffers    [2]uintptr
}

// rawSamples is the SDK's 64-bit value split into two 32-bit halves.
type rawSamples struct {
	Hi uint32
	Lo uint32
}

func (s rawSamples) int64() int64 {
	return int64(uint64(s.Hi)<<32 | uint64(s.Lo))
}

type comDriver struct {
	unk *ole.IUnknown

	// The driver keeps the callbacks pointer until DisposeBuffers.
	pinner    runtime.Pinner
	callbacks *asio.Callbacks
}

func (d *comDriver) this() uintptr {
	return uintptr(unsafe.Pointer(d.unk))
}

func (d *comDriver) vtbl() *iasioVtbl {
	return (*iasioVtbl)(unsafe.Pointer(d.unk.RawVTable))
}

func (d *comDriver) AddRef() uint32 {
	return uint32(d.unk.AddRef())
}

func (d *comDriver) Release() uint32 {
	n := uint32(d.unk.Release())
	if n == 0 {
		d.pinner.Unpin()
		d.callbacks = nil
	}
	return n
}

func (d *comDriver) Init(sysHandle uintptr) bool {
	r, _, _ := syscall.SyscallN(d.vtbl().Init, d.this(), sysHandle)
	return asio.Bool(int32(r)) != asio.False
}

func (d *comDriver) Name() string {
	var buf [32]byte
	syscall.SyscallN(d.vtbl().GetDriverName, d.this(), uintptr(unsafe.Pointer(&buf[0])))
	return windows.ByteSliceToString(buf[:])
}

func (d *comDriver) Version() int32 {
	r, _, _ := syscall.SyscallN(d.vtbl().GetDriverVersion, d.this())
	return int32(r)
}

func (d *comDriver) ErrorMessage() string {
	var buf [124]byte
	syscall.SyscallN(d.vtbl().GetErrorMessage, d.this(), uintptr(unsafe.Pointer(&buf[0])))
	return windows.ByteSliceToString(buf[:])
}

func (d *comDriver) Start() error {
	r, _, _ := syscall.SyscallN(d.vtbl().Start, d.this())
	return asio.Result(int32(r))
}

func (d *comDriver) Stop() error {
	r, _, _ := syscall.SyscallN(d.vtbl().Stop, d.this())
	return asio.Result(int32(r))
}

func (d *comDriver) Channels() (int, int, error) {
	var in, out int32
	r, _, _ := syscall.SyscallN(d.vtbl().GetChannels, d.this(),
		uintptr(unsafe.Pointer(&in)), uintptr(unsafe.Pointer(&out)))
	return int(in), int(out), asio.Result(int32(r))
}

func (d *comDriver) Latencies() (int, int, error) {
	var in, out int32
	r, _, _ := syscall.SyscallN(d.vtbl().GetLatencies, d.this(),
		uintptr(unsafe.Pointer(&in)), uintptr(unsafe.Pointer(&out)))
	return int(in), int(out), asio.Result(int32(r))
}

func (d *comDriver) BufferSize() (asio.BufferSize, error) {
	var minSize, maxSize, preferred, granularity int32
	r, _, _ := syscall.SyscallN(d.vtbl().GetBufferSize, d.this(),
		uintptr(unsafe.Pointer(&minSize)), uintptr(unsafe.Pointer(&maxSize)),
		uintptr(unsafe.Pointer(&preferred)), uintptr(unsafe.Pointer(&granularity)))
	return asio.BufferSize{
		Min:         int(minSize),
		Max:         int(maxSize),
		Preferred:   int(preferred),
		Granularity: int(granularity),
	}, asio.Result(int32(r))
}

// The amd64 stdcall trampoline mirrors integer arguments into XMM0-3, so a
// double can be passed as its bit pattern.
func (d *comDriver) CanSampleRate(rate float64) error {
	r, _, _ := syscall.SyscallN(d.vtbl().CanSampleRate, d.this(), uintptr(math.Float64bits(rate)))
	return asio.Result(int32(r))
}

func (d *comDriver) SampleRate() (float64, error) {
	var rate float64
	r, _, _ := syscall.SyscallN(d.vtbl().GetSampleRate, d.this(), uintptr(unsafe.Pointer(&rate)))
	return rate, asio.Result(int32(r))
}

func (d *comDriver) SetSampleRate(rate float64) error {
	r, _, _ := syscall.SyscallN(d.vtbl().SetSampleRate, d.this(), uintptr(math.Float64bits(rate)))
	return asio.Result(int32(r))
}

func (d *comDriver) ClockSources() ([]asio.ClockSource, error) {
	var raw [asio.MaxClockSources]rawClockSource
	n := int32(len(raw))
	r, _, _ := syscall.SyscallN(d.vtbl().GetClockSources, d.this(),
		uintptr(unsafe.Pointer(&raw[0])), uintptr(unsafe.Pointer(&n)))
	if err := asio.Result(int32(r)); err != nil {
		return nil, err
	}
	n = min(max(n, 0), int32(len(raw)))
	out := make([]asio.ClockSource, 0, n)
	for _, c := range raw[:n] {
		out = append(out, asio.ClockSource{
			Index:             int(c.Index),
			AssociatedChannel: int(c.AssociatedChannel),
			AssociatedGroup:   int(c.AssociatedGroup),
			Current:           asio.Bool(c.IsCurrentSource) != asio.False,
			Name:              windows.ByteSliceToString(c.Name[:]),
		})
	}
	return out, nil
}

func (d *comDriver) SetClockSource(index int) error {
	r, _, _ := syscall.SyscallN(d.vtbl().SetClockSource, d.this(), uintptr(int32(index)))
	return asio.Result(int32(r))
}

func (d *comDriver) SamplePosition() (int64, int64, error) {
	var pos, stamp rawSamples
	r, _, _ := syscall.SyscallN(d.vtbl().GetSamplePosition, d.this(),
		uintptr(unsafe.Pointer(&pos)), uintptr(unsafe.Pointer(&stamp)))
	return pos.int64(), stamp.int64(), asio.Result(int32(r))
}

func (d *comDriver) ChannelInfo(channel int, input bool) (asio.ChannelInfo, error) {
	raw := rawChannelInfo{Channel: int32(channel), IsInput: int32(asio.BoolOf(input))}
	r, _, _ := syscall.SyscallN(d.vtbl().GetChannelInfo, d.this(), uintptr(unsafe.Pointer(&raw)))
	if err := asio.Result(int32(r)); err != nil {
		return asio.ChannelInfo{}, err
	}
	return asio.ChannelInfo{
		Channel: int(raw.Channel),
		Input:   asio.Bool(raw.IsInput) != asio.False,
		Active:  asio.Bool(raw.IsActive) != asio.False,
		Group:   int(raw.ChannelGroup),
		Type:    asio.SampleType(raw.Type),
		Name:    windows.ByteSliceToString(raw.Name[:]),
	}, nil
}

func (d *comDriver) CreateBuffers(infos []asio.BufferInfo, bufferSize int, callbacks *asio.Callbacks) error {
	if len(infos) == 0 || callbacks == nil {
		return asio.InvalidParameter
	}
	raw := make([]rawBufferInfo, len(infos))
	for i, info := range infos {
		raw[i] = rawBufferInfo{IsInput: int32(asio.BoolOf(info.Input)), ChannelNum: int32(info.Channel)}
	}

	d.pinner.Unpin()
	d.pinner.Pin(callbacks)
	d.callbacks = callbacks

	r, _, _ := syscall.SyscallN(d.vtbl().CreateBuffers, d.this(),
		uintptr(unsafe.Pointer(&raw[0])), uintptr(int32(len(raw))),
		uintptr(int32(bufferSize)), uintptr(unsafe.Pointer(callbacks)))
	if err := asio.Result(int32(r)); err != nil {
		d.pinner.Unpin()
		d.callbacks = nil
		return err
	}
	for i := range infos {
		infos[i].Buffers = raw[i].Buffers
	}
	return nil
}

func (d *comDriver) DisposeBuffers() error {
	r, _, _ := syscall.SyscallN(d.vtbl().DisposeBuffers, d.this())
	d.pinner.Unpin()
	d.callbacks = nil
	return asio.Result(int32(r))
}

func (d *comDriver) ControlPanel() error {
	r, _, _ := syscall.SyscallN(d.vtbl().ControlPanel, d.this())
	return asio.Result(int32(r))
}

func (d *comDriver) Future(selector asio.FutureSelector, opt uintptr) error {
	r, _, _ := syscall.SyscallN(d.vtbl().Future, d.this(), uintptr(int32(selector)), opt)
	return asio.Result(int32(r))
}

func (d *comDriver) OutputReady() error {
	r, _, _ := syscall.SyscallN(d.vtbl().OutputReady, d.this())
	return asio.Result(int32(r))
}

var _ Object = (*comDriver)(nil)
