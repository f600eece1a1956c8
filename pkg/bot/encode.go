package bot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"sort"

	"github.com/orgball2608/tgcore/pkg/requests"
	"github.com/orgball2608/tgcore/pkg/types"
)

// encode returns the request body for payload: JSON, or multipart form data
// when a file has to be uploaded.
func encode(payload requests.Payload) (io.Reader, string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}

	uploads := uploadsOf(payload)
	if len(uploads) == 0 {
		return bytes.NewReader(data), "application/json", nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if f, ok := uploads[k]; ok {
			if err := writeFile(w, k, f); err != nil {
				return nil, "", fmt.Errorf("writing %s: %w", k, err)
			}
			continue
		}
		if err := w.WriteField(k, formValue(fields[k])); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func uploadsOf(payload requests.Payload) map[string]types.InputFile {
	mp, ok := payload.(requests.Multipart)
	if !ok {
		return nil
	}
	var uploads map[string]types.InputFile
	for name, f := range mp.Files() {
		if !f.NeedsUpload() {
			continue
		}
		if uploads == nil {
			uploads = make(map[string]types.InputFile)
		}
		uploads[name] = f
	}
	return uploads
}

// formValue writes strings raw and everything else as JSON.
func formValue(raw json.RawMessage) string {
	var s string
	if len(raw) > 0 && raw[0] == '"' && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(raw)
}

func writeFile(w *multipart.Writer, field string, f types.InputFile) error {
	name, r, err := f.Upload()
	if err != nil {
		return err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}
	part, err := w.CreateFormFile(field, name)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, r)
	return err
}
