package validate

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestContent(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"merhaba", false},
		{"  boşluklu içerik  ", false},
		{"", true},
		{"   ", true},
		{"\n\t ", true},
	}
	for _, c := range cases {
		err := Content(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("Content(%q) = %v, wantErr %v", c.in, err, c.wantErr)
		}
	}
}

func TestImage(t *testing.T) {
	small := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("tinypng"))
	big := "data:image/jpeg;base64," + strings.Repeat("A", (MaxImageBytes/3+2)*4)

	if err := Image(small); err != nil {
		t.Errorf("small png rejected: %v", err)
	}
	if err := Image(big); !errors.Is(err, ErrImageTooBig) {
		t.Errorf("oversized image accepted: %v", err)
	}
	if err := Image("data:text/plain;base64,aGk="); !errors.Is(err, ErrNotAnImage) {
		t.Errorf("non-image mime accepted: %v", err)
	}
	if err := Image("plainstring"); !errors.Is(err, ErrNotAnImage) {
		t.Errorf("missing data url prefix accepted: %v", err)
	}
}

func TestRating(t *testing.T) {
	for n := 1; n <= 5; n++ {
		if err := Rating(n); err != nil {
			t.Errorf("Rating(%d) = %v", n, err)
		}
	}
	for _, n := range []int{0, 6, -1, 100} {
		if err := Rating(n); err == nil {
			t.Errorf("Rating(%d) accepted", n)
		}
	}
}
