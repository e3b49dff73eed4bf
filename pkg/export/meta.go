package export

import (
	"os"
	"time"

	"github.com/bytedance/sonic"
)

// Meta describes how an image was rendered.
type Meta struct {
	Image     string `json:"image"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Precision uint   `json:"precision"`
	Center    string `json:"center"`
	Scale     string `json:"scale"`
	MaxIter   int    `json:"max_iter"`
	Palette   string `json:"palette"`
	Workers   int    `json:"workers"`

	Elapsed  time.Duration `json:"elapsed_ns"`
	Interior int           `json:"interior"`
	// Histogram[n] is the number of pixels that escaped after n iterations.
	Histogram []int `json:"histogram"`
}

// WriteMeta writes m to path as indented JSON.
func WriteMeta(path string, m Meta) error {
	data, err := sonic.ConfigStd.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ReadMeta loads a sidecar written by WriteMeta.
func ReadMeta(path string) (Meta, error) {
	var m Meta
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	err = sonic.ConfigStd.Unmarshal(data, &m)
	return m, err
}
