package payment

import (
	"net/url"
	"strings"
	"testing"
)

func TestBuilder_BuildLink(t *testing.T) {
	b := NewBuilder("https://monzo.me", "davidobidu")

	link := b.BuildLink(320, "Jane Doe", "07700900000")

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("BuildLink() produced unparseable URL %q: %v", link, err)
	}

	if u.Host != "monzo.me" {
		t.Errorf("host = %q, want monzo.me", u.Host)
	}
	if u.Path != "/davidobidu/320.00" {
		t.Errorf("path = %q, want /davidobidu/320.00", u.Path)
	}

	memo := u.Query().Get("d")
	if memo == "" {
		t.Fatal("memo parameter d is missing")
	}
	if !strings.HasPrefix(memo, "DONT EDIT THIS") {
		t.Errorf("memo = %q, want cautionary prefix", memo)
	}
	if !strings.Contains(memo, "Jane_Doe") {
		t.Errorf("memo = %q, want underscored name", memo)
	}
	if !strings.Contains(memo, "07700900000") {
		t.Errorf("memo = %q, want phone number", memo)
	}
}

func TestBuilder_BuildLink_AmountAlwaysTwoDecimals(t *testing.T) {
	b := NewBuilder("https://monzo.me", "davidobidu")

	tests := []struct {
		total    int
		wantPath string
	}{
		{total: 7, wantPath: "/davidobidu/7.00"},
		{total: 32, wantPath: "/davidobidu/32.00"},
		{total: 320, wantPath: "/davidobidu/320.00"},
		{total: 500, wantPath: "/davidobidu/500.00"},
	}

	for _, tt := range tests {
		link := b.BuildLink(tt.total, "A", "0")
		u, err := url.Parse(link)
		if err != nil {
			t.Fatalf("BuildLink(%d) unparseable: %v", tt.total, err)
		}
		if u.Path != tt.wantPath {
			t.Errorf("BuildLink(%d) path = %q, want %q", tt.total, u.Path, tt.wantPath)
		}
	}
}

func TestBuilder_BuildLink_MemoIsEncoded(t *testing.T) {
	b := NewBuilder("https://monzo.me/", "davidobidu")

	link := b.BuildLink(39, "Ade Bola Smith", "07712345678")

	// the raw query must not contain unencoded spaces
	rawQuery := link[strings.Index(link, "?")+1:]
	if strings.Contains(rawQuery, " ") {
		t.Errorf("query %q contains unencoded space", rawQuery)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("BuildLink() unparseable: %v", err)
	}
	if got := u.Query().Get("d"); !strings.Contains(got, "Ade_Bola_Smith") {
		t.Errorf("decoded memo = %q, want all spaces in name replaced", got)
	}
}
