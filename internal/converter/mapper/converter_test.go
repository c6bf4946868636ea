package mapper

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"blk2json/internal/converter/models"
	"blk2json/internal/converter/parser"
)

const scenario = "drawLines{ line{line:p4=0,0,5,5;move:b=false;} }\n" +
	"drawQuads{ quad{tl:p2=0,0;tr:p2=2,0;br:p2=2,2;bl:p2=0,2;} }"

func TestConvertScenario(t *testing.T) {
	t.Parallel()

	got, err := New().Convert(strings.NewReader(scenario))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}

	s, _ := got.Get("0")
	line, ok := s.(*models.Line)
	if !ok {
		t.Fatalf("key 0 = %T, want *models.Line", s)
	}
	if line.Start != (models.Point{}) || line.End != (models.Point{X: 5, Y: 5}) {
		t.Errorf("line = %+v", line)
	}

	s, _ = got.Get("1")
	quad, ok := s.(*models.Quad)
	if !ok {
		t.Fatalf("key 1 = %T, want *models.Quad", s)
	}
	want := []models.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	for i, p := range quad.Points() {
		if p != want[i] {
			t.Errorf("corner %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestConvertIgnoresRecordsOutsideBlocks(t *testing.T) {
	t.Parallel()

	text := "line{line:p4=9,9,9,9;move:b=false;}\n" +
		"drawLines{ line{line:p4=1,1,2,2;move:b=false;} }\n" +
		"other{ quad{tl:p2=0,0;tr:p2=1,0;br:p2=1,1;bl:p2=0,1;} }"

	got, err := New().ConvertString(text)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", got.Len())
	}
	s, _ := got.Get("0")
	if l := s.(*models.Line); l.Start.X != 1 {
		t.Errorf("picked the record outside drawLines: %+v", l)
	}
}

func TestConvertMissingBlocks(t *testing.T) {
	t.Parallel()

	got, err := New().ConvertString("nothing to see")
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}

	data, err := Encode(got)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Encode() = %s, want {}", data)
	}
}

func TestConvertFailsWholeInput(t *testing.T) {
	t.Parallel()

	text := "drawLines{ line{line:p4=0,0,1,1;move:b=false;} line{line:p4=1,2,3;move:b=false;} }"
	got, err := New().ConvertString(text)
	if !errors.Is(err, parser.ErrInvalidArity) {
		t.Fatalf("error = %v, want ErrInvalidArity", err)
	}
	if got != nil {
		t.Errorf("collection = %v, want nil", got)
	}
}

func TestConvertToJSON(t *testing.T) {
	t.Parallel()

	data, shapes, err := New(WithLanguage("ru")).ConvertToJSON(strings.NewReader(scenario))
	if err != nil {
		t.Fatalf("ConvertToJSON() error = %v", err)
	}
	if shapes.Len() != 2 {
		t.Errorf("Len() = %d, want 2", shapes.Len())
	}

	want := `{
  "0": {
    "name": "Линия0",
    "type": "line",
    "start": {
      "x": 0,
      "y": 0
    },
    "end": {
      "x": 5,
      "y": 5
    },
    "selected": false
  },
  "1": {
    "name": "Четырёхугольник1",
    "type": "quad",
    "pos1": {
      "x": 0,
      "y": 0
    },
    "pos2": {
      "x": 2,
      "y": 0
    },
    "pos3": {
      "x": 2,
      "y": 2
    },
    "pos4": {
      "x": 0,
      "y": 2
    },
    "selected": false
  }
}`
	if string(data) != want {
		t.Errorf("ConvertToJSON() =\n%s\nwant\n%s", data, want)
	}
}

func TestConvertKeyOrder(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("drawLines{")
	for i := 0; i < 11; i++ {
		b.WriteString("line{line:p4=0,0,1,1;move:b=false;}")
	}
	b.WriteString("}")

	tests := []struct {
		order models.KeyOrder
		want  []string
	}{
		{order: models.OrderNumeric, want: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}},
		{order: models.OrderLexical, want: []string{"0", "1", "10", "2", "3", "4", "5", "6", "7", "8", "9"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			t.Parallel()

			data, _, err := New(WithKeyOrder(tt.order)).ConvertToJSON(strings.NewReader(b.String()))
			if err != nil {
				t.Fatalf("ConvertToJSON() error = %v", err)
			}

			dec := json.NewDecoder(strings.NewReader(string(data)))
			if _, err := dec.Token(); err != nil {
				t.Fatal(err)
			}
			var keys []string
			for dec.More() {
				tok, err := dec.Token()
				if err != nil {
					t.Fatal(err)
				}
				keys = append(keys, tok.(string))
				var skip json.RawMessage
				if err := dec.Decode(&skip); err != nil {
					t.Fatal(err)
				}
			}

			if strings.Join(keys, ",") != strings.Join(tt.want, ",") {
				t.Errorf("keys = %v, want %v", keys, tt.want)
			}
		})
	}
}

func TestConvertRejectsNonFinite(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"NaN", "Inf", "-inf", "1e999"} {
		t.Run(value, func(t *testing.T) {
			t.Parallel()

			text := "drawLines{ line{line:p4=" + value + ",0,1,1;move:b=false;} }"
			_, _, err := New().ConvertToJSON(strings.NewReader(text))
			var malformed *parser.MalformedCoordinatesError
			if !errors.As(err, &malformed) {
				t.Fatalf("error = %v, want *MalformedCoordinatesError", err)
			}
			if malformed.Value != value {
				t.Errorf("Value = %q, want %q", malformed.Value, value)
			}
		})
	}
}
