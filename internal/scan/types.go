package scan

// Device is a whole physical disk as reported by the host.
type Device struct {
	Name   string `json:"name"`
	Model  string `json:"model"`
	Serial string `json:"serial"`
	Size   string `json:"size"`
}

// Lister enumerates whole block devices on the host.
type Lister interface {
	Devices() ([]Device, error)
}

// Claims reports kernel device names currently held by a storage pool.
type Claims interface {
	Claimed() (map[string]struct{}, error)
}

// AliasQuery returns the stable alias paths naming a kernel device.
type AliasQuery interface {
	Aliases(name string) ([]string, error)
}

// AliasFunc adapts a plain function to the AliasQuery interface.
type AliasFunc func(name string) ([]string, error)

func (f AliasFunc) Aliases(name string) ([]string, error) { return f(name) }
