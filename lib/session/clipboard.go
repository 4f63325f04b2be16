package session

import "github.com/atotto/clipboard"

type Clipboard interface {
	ReadAll() (string, error)
}

// SystemClipboard shells out to pbpaste/xclip/xsel/wl-paste or uses the win32 API
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}
