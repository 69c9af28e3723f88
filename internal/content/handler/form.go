package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"folio/internal/content/models"
	"folio/internal/upload"
	dErrors "folio/pkg/domain-errors"
)

// maxFormMemory bounds the in-memory portion of a multipart parse; larger
// file parts spill to temp files.
const maxFormMemory = 32 << 20

// parseForm flattens the request body into a Form and stores the upload
// named by uploadField, if any. Admin forms submit multipart; API clients
// may send JSON or urlencoded bodies instead, with no file either way.
func parseForm(r *http.Request, uploads *upload.Saver, uploadField string) (models.Form, string, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "multipart/form-data":
		return parseMultipart(r, uploads, uploadField)
	case "application/json":
		form, err := parseJSON(r)
		return form, "", err
	default:
		if err := r.ParseForm(); err != nil {
			return nil, "", dErrors.New(dErrors.CodeBadRequest, "invalid request body")
		}
		form := make(models.Form, len(r.PostForm))
		for key, values := range r.PostForm {
			if len(values) > 0 {
				form[key] = values[0]
			}
		}
		return form, "", nil
	}
}

func parseMultipart(r *http.Request, uploads *upload.Saver, uploadField string) (models.Form, string, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, "", dErrors.New(dErrors.CodeBadRequest, "invalid multipart body")
	}

	form := make(models.Form, len(r.MultipartForm.Value))
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			form[key] = values[0]
		}
	}

	if uploadField == "" {
		return form, "", nil
	}
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return form, "", nil
		}
		return nil, "", dErrors.New(dErrors.CodeBadRequest, "invalid file upload")
	}
	defer file.Close()

	path, err := uploads.Save(file, header)
	if err != nil {
		return nil, "", err
	}
	return form, path, nil
}

// parseJSON accepts scalar fields as their string form; nested objects and
// arrays are re-encoded, which is how socialLinks arrives from JSON
// clients.
func parseJSON(r *http.Request) (models.Form, error) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	form := make(models.Form, len(body))
	for key, value := range body {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			form[key] = v
		case bool:
			form[key] = strconv.FormatBool(v)
		case float64:
			form[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			raw, err := json.Marshal(v)
			if err != nil {
				return nil, dErrors.New(dErrors.CodeBadRequest, "invalid request body")
			}
			form[key] = string(raw)
		}
	}
	return form, nil
}
