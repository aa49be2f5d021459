package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

const maxJSONBodyBytes = 1 << 20

var ErrInvalidContentType = errors.New("invalid content type")

// DecodeJSONRequest checks the content type and decodes the request body into v.
func DecodeJSONRequest(r *http.Request, v any) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), ContentType.JSON) {
		return ErrInvalidContentType
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}

// PathInt64 reads a numeric mux path variable.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		return 0, fmt.Errorf("%s empty", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s NaN", name)
	}
	return v, nil
}
