package engine

// Audio is the sound service the engine forwards to. Calls never block and
// unknown ids are ignored.
type Audio interface {
	Play(id string)
	PlayTheme(id string)
	StopTheme()
	Mute()
	FadeOut()

	// Update runs once at the end of every tick.
	Update()
}

// Silent is an Audio that plays nothing.
type Silent struct{}

func (Silent) Play(string) {}
func (Silent) PlayTheme(string) {}
func (Silent) StopTheme() {}
func (Silent) Mute() {}
func (Silent) FadeOut() {}
func (Silent) Update() {}

// Store persists opaque blobs by key.
type Store interface {
	Put(key string, data []byte) error
	// Get returns ok == false when key has no blob.
	Get(key string) (data []byte, ok bool, err error)
	Delete(key string) error
}
