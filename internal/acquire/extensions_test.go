package acquire

import (
	"reflect"
	"testing"
)

func TestDotted(t *testing.T) {
	tests := []struct {
		input    []string
		expected []string
	}{
		{nil, nil},
		{[]string{"png", ".JPG", " ", " csv "}, []string{".png", ".jpg", ".csv"}},
	}

	for _, test := range tests {
		if result := dotted(test.input); !reflect.DeepEqual(result, test.expected) {
			t.Errorf("dotted(%v) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestUndotted(t *testing.T) {
	result := undotted([]string{".png", "jpg"})
	expected := []string{"png", "jpg"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("undotted() = %v, expected %v", result, expected)
	}
}
