// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"webcraft/internal/models"
)

var (
	fencedJSON = regexp.MustCompile("```json([\\s\\S]*?)```")
	fencedAny  = regexp.MustCompile("```([\\s\\S]*?)```")
)

// ExtractJSON pulls the JSON payload out of a freeform model reply: the
// first ```json fenced block, else the first fenced block of any kind, else
// the whole text. The result is trimmed. An empty fenced block yields the
// whole text.
func ExtractJSON(text string) string {
	for _, re := range []*regexp.Regexp{fencedJSON, fencedAny} {
		if m := re.FindStringSubmatch(text); m != nil {
			if m[1] == "" {
				break
			}
			return strings.TrimSpace(m[1])
		}
	}
	return strings.TrimSpace(text)
}

// contentSchema only checks the structure generation cannot recover from:
// sections must be objects carrying a non-empty string type. Everything else
// is optional and fitted leniently by fitJSON.
const contentSchemaJSON = `{
  "type": "object",
  "properties": {
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var (
	contentSchema = jsonschema.MustCompileString("content.json", contentSchemaJSON)
	contentType   = reflect.TypeOf(models.Content{})
)

// DecodeContent parses raw as website content. Every section must carry a
// string type. Optional fields of the wrong JSON type are coerced where the
// meaning is clear (29 becomes "29", "true" becomes true, a single string
// becomes a one-element list) and dropped otherwise.
func DecodeContent(raw string) (*models.Content, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse content: unexpected data after JSON document")
	}
	if err := contentSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}

	fitted, _ := fitJSON(doc, contentType)
	b, err := json.Marshal(fitted)
	if err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	var c models.Content
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return &c, nil
}

// fitJSON rewrites a value decoded with UseNumber so that it unmarshals into
// t. ok is false when v cannot be made to fit; callers drop such values.
// Object keys are matched exactly against json tags and unknown keys are
// dropped.
func fitJSON(v any, t reflect.Type) (fitted any, ok bool) {
	switch t.Kind() {
	case reflect.String:
		switch x := v.(type) {
		case string:
			return x, true
		case json.Number:
			return x.String(), true
		case bool:
			return strconv.FormatBool(x), true
		case []any:
			parts := make([]string, 0, len(x))
			for _, e := range x {
				if s, ok := fitJSON(e, t); ok && s != "" {
					parts = append(parts, s.(string))
				}
			}
			return strings.Join(parts, ", "), true
		}

	case reflect.Bool:
		switch x := v.(type) {
		case bool:
			return x, true
		case string:
			b, err := strconv.ParseBool(x)
			return b, err == nil
		}

	case reflect.Slice:
		if v == nil {
			return nil, false
		}
		elems, isList := v.([]any)
		if !isList {
			elems = []any{v}
		}
		out := make([]any, 0, len(elems))
		for _, e := range elems {
			if f, ok := fitJSON(e, t.Elem()); ok {
				out = append(out, f)
			}
		}
		return out, true

	case reflect.Struct:
		obj, isObj := v.(map[string]any)
		if !isObj {
			return nil, false
		}
		out := make(map[string]any, len(obj))
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				continue
			}
			if raw, present := obj[name]; present {
				if f, ok := fitJSON(raw, field.Type); ok {
					out[name] = f
				}
			}
		}
		return out, true
	}
	return nil, false
}

// DecodeCode parses raw as a {"html", "css"} object. The html must be
// non-empty.
func DecodeCode(raw string) (*models.GeneratedCode, error) {
	var code models.GeneratedCode
	if err := json.Unmarshal([]byte(raw), &code); err != nil {
		return nil, fmt.Errorf("parse code: %w", err)
	}
	if strings.TrimSpace(code.HTML) == "" {
		return nil, fmt.Errorf("parse code: empty html")
	}
	return &code, nil
}

// unsplashCollections maps image categories to Unsplash collection ids.
var unsplashCollections = map[string]string{
	"business":     "3330445",
	"creative":     "4473755",
	"professional": "3330448",
	"technology":   "9270463",
	"food":         "3356576",
	"nature":       "3330448",
	"fashion":      "3330453",
	"travel":       "3356584",
	"health":       "3657445",
	"education":    "3657442",
	"default":      "3330445",
}

// UnsplashURL returns a collection image URL for the category, falling
// back to the default collection for unknown categories.
func UnsplashURL(category string, width, height int) string {
	id, ok := unsplashCollections[category]
	if !ok {
		id = unsplashCollections["default"]
	}
	return fmt.Sprintf("https://source.unsplash.com/collection/%s/%dx%d", id, width, height)
}

var genericUnsplash = regexp.MustCompile(`https://source\.unsplash\.com/\w+/(\d+)x(\d+)`)

// RewritePlaceholderImages replaces every generic Unsplash placeholder
// (https://source.unsplash.com/<word>/<W>x<H>) with a collection URL of
// the same size. The default collection is always used.
func RewritePlaceholderImages(html string) string {
	return genericUnsplash.ReplaceAllStringFunc(html, func(match string) string {
		m := genericUnsplash.FindStringSubmatch(match)
		w, errW := strconv.Atoi(m[1])
		h, errH := strconv.Atoi(m[2])
		if errW != nil || errH != nil {
			return match
		}
		return UnsplashURL("default", w, h)
	})
}
