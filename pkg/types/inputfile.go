package types

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// InputFile is a file parameter: a file already stored by Telegram, a URL
// Telegram downloads itself, or content uploaded with the request.
type InputFile struct {
	data tgbotapi.RequestFileData
	// content is set for readers; it is shared by copies of the InputFile.
	content *replay
}

// replay keeps the content of a one-shot reader so that it can be uploaded
// again by retries and cloned requests.
type replay struct {
	once sync.Once
	data []byte
	err  error
}

func (r *replay) load(src io.Reader) ([]byte, error) {
	r.once.Do(func() {
		r.data, r.err = io.ReadAll(src)
		if c, ok := src.(io.Closer); ok {
			if err := c.Close(); err != nil && r.err == nil {
				r.err = err
			}
		}
	})
	return r.data, r.err
}

// FileID references a file already stored on Telegram servers.
func FileID(id string) InputFile { return InputFile{data: tgbotapi.FileID(id)} }

// FileURL references a file Telegram fetches over HTTP.
func FileURL(url string) InputFile { return InputFile{data: tgbotapi.FileURL(url)} }

// FileBytes uploads data under the given file name.
func FileBytes(name string, data []byte) InputFile {
	return InputFile{data: tgbotapi.FileBytes{Name: name, Bytes: data}}
}

// FileReader uploads the content of r under the given file name. r is read
// to the end and closed on the first upload; later uploads replay the content.
func FileReader(name string, r io.Reader) InputFile {
	return InputFile{
		data:    tgbotapi.FileReader{Name: name, Reader: r},
		content: new(replay),
	}
}

// FilePath uploads a local file.
func FilePath(path string) InputFile { return InputFile{data: tgbotapi.FilePath(path)} }

// NeedsUpload reports whether the file content travels with the request.
func (f InputFile) NeedsUpload() bool {
	return f.data != nil && f.data.NeedsUpload()
}

// Upload returns the file name and content of an uploaded file. The caller
// closes the reader if it implements io.Closer.
func (f InputFile) Upload() (string, io.Reader, error) {
	if d, ok := f.data.(tgbotapi.FileReader); ok && f.content != nil {
		data, err := f.content.load(d.Reader)
		if err != nil {
			return "", nil, err
		}
		return d.Name, bytes.NewReader(data), nil
	}
	return f.data.UploadData()
}

// Value returns the string sent for files that are not uploaded.
func (f InputFile) Value() string {
	if f.data == nil || f.data.NeedsUpload() {
		return ""
	}
	return f.data.SendData()
}

// MarshalJSON encodes the file ID or URL. Uploads encode as an attach://
// reference to the multipart field holding their content.
func (f InputFile) MarshalJSON() ([]byte, error) {
	if f.NeedsUpload() {
		return json.Marshal("attach://" + f.name())
	}
	return json.Marshal(f.Value())
}

func (f InputFile) name() string {
	switch d := f.data.(type) {
	case tgbotapi.FileBytes:
		return d.Name
	case tgbotapi.FileReader:
		return d.Name
	case tgbotapi.FilePath:
		return string(d)
	}
	return ""
}
