package input

// Manager hands devices to controllers and pointers in arrival order.
//
// Requesting a controller creates it immediately, even if no device is
// available yet; it is bound to the next device that arrives. Devices that
// arrive first wait in a queue for the next request.
type Manager struct {
	tolerance int

	controllers []*Controller
	requests    []*Controller
	devices     []CommandDevice

	pointers        []*Pointer
	pointerRequests []*Pointer
	pointerDevices  []PointerDevice

	pollers []Poller
}

// NewManager creates a manager. tolerance is copied into every controller it
// creates, see Controller.Tolerance.
func NewManager(tolerance int) *Manager {
	return &Manager{tolerance: tolerance}
}

// AddDevice queues a command device for the next controller request.
func (m *Manager) AddDevice(d CommandDevice) {
	if d == nil {
		return
	}
	m.devices = append(m.devices, d)
	m.track(d)
	m.bindControllers()
}

// AddPointerDevice queues a pointer device for the next pointer request.
func (m *Manager) AddPointerDevice(d PointerDevice) {
	if d == nil {
		return
	}
	m.pointerDevices = append(m.pointerDevices, d)
	m.track(d)
	m.bindPointers()
}

func (m *Manager) track(d any) {
	p, ok := d.(Poller)
	if !ok {
		return
	}
	for _, existing := range m.pollers {
		if existing == p {
			return
		}
	}
	m.pollers = append(m.pollers, p)
}

// Controller returns controller id, creating it and any lower ones on demand.
func (m *Manager) Controller(id int) *Controller {
	if id < 0 {
		id = 0
	}
	for len(m.controllers) <= id {
		c := NewController(nil)
		c.Tolerance = m.tolerance
		m.controllers = append(m.controllers, c)
		m.requests = append(m.requests, c)
	}
	m.bindControllers()
	return m.controllers[id]
}

// Pointer returns pointer id, creating it and any lower ones on demand.
func (m *Manager) Pointer(id int) *Pointer {
	if id < 0 {
		id = 0
	}
	for len(m.pointers) <= id {
		p := NewPointer(nil)
		m.pointers = append(m.pointers, p)
		m.pointerRequests = append(m.pointerRequests, p)
	}
	m.bindPointers()
	return m.pointers[id]
}

func (m *Manager) bindControllers() {
	for len(m.requests) > 0 && len(m.devices) > 0 {
		m.requests[0].SetDevice(m.devices[0])
		m.requests = m.requests[1:]
		m.devices = m.devices[1:]
	}
}

func (m *Manager) bindPointers() {
	for len(m.pointerRequests) > 0 && len(m.pointerDevices) > 0 {
		m.pointerRequests[0].SetDevice(m.pointerDevices[0])
		m.pointerRequests = m.pointerRequests[1:]
		m.pointerDevices = m.pointerDevices[1:]
	}
}

// Update samples every controller and pointer, then polls the devices.
func (m *Manager) Update() {
	for _, c := range m.controllers {
		c.Update()
	}
	for _, p := range m.pointers {
		p.Update()
	}
	for _, p := range m.pollers {
		p.Poll()
	}
}
