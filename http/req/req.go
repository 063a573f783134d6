package req

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/xy-planning-network/frontdesk"
)

// multipartMemory is how many bytes of a multipart body are held in memory before spilling to disk.
const multipartMemory = 1 << 20

type Parser struct {
	queryParamDecoder queryParamDecoder
	validator
}

// NewParser constructs a Parser whose validator understands each Rule.
func NewParser(rules ...Rule) *Parser {
	return &Parser{
		queryParamDecoder: newQueryParamDecoder(),
		validator:         newValidator(rules...),
	}
}

// ParseQueryParams decodes into a pointer to a struct the query param data in *http.Request.URL.Query.
// If successful, ParseQueryParams runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := p.queryParamDecoder.decode(structPtr, params); err != nil {
		return fmt.Errorf("frontdesk/http/req: failed decoding request query params: %w", err)
	}

	if err := p.Validate(structPtr); err != nil {
		return fmt.Errorf("frontdesk/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseAjax flattens the body of r into its top-level keys and values.
//
// A JSON object body keeps string values as-is and any other value as its raw JSON text;
// null values are dropped.
// Form and multipart bodies keep the first value of each key.
// Query params are never included.
//
// ParseAjax returns ErrBadFormat if the body cannot be read or decoded.
func (p *Parser) ParseAjax(r *http.Request) (map[string]string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		return parseJSONFields(r.Body)

	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return nil, fmt.Errorf("frontdesk/http/req: %w: failed parsing multipart body: %s", frontdesk.ErrBadFormat, err)
		}

	default:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("frontdesk/http/req: %w: failed parsing form body: %s", frontdesk.ErrBadFormat, err)
		}
	}

	fields := make(map[string]string, len(r.PostForm))
	for k, vals := range r.PostForm {
		if len(vals) > 0 {
			fields[k] = vals[0]
		}
	}

	return fields, nil
}

func parseJSONFields(body io.Reader) (map[string]string, error) {
	if body == nil {
		return map[string]string{}, nil
	}

	raw := make(map[string]json.RawMessage)
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}

		return nil, fmt.Errorf("frontdesk/http/req: %w: failed decoding JSON body: %s", frontdesk.ErrBadFormat, err)
	}

	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		v = bytes.TrimSpace(v)
		if bytes.Equal(v, []byte("null")) {
			continue
		}

		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			fields[k] = s
			continue
		}

		fields[k] = string(v)
	}

	return fields, nil
}
