package gateway

import "testing"

func TestVideoReference(t *testing.T) {
	if ref := videoReference(nil, ""); ref != nil {
		t.Errorf("expected nil reference for empty input, got %+v", ref)
	}
	if ref := videoReference([]byte{}, "image/jpeg"); ref != nil {
		t.Errorf("expected nil reference for zero-length bytes, got %+v", ref)
	}

	data := []byte{0x89, 0x50, 0x4e, 0x47}
	ref := videoReference(data, "image/jpeg")
	if ref == nil {
		t.Fatal("expected a reference image")
	}
	if string(ref.ImageBytes) != string(data) {
		t.Errorf("image bytes mismatch: %v", ref.ImageBytes)
	}
	if ref.MIMEType != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", ref.MIMEType)
	}
}

func TestVideoReferenceDefaultMIME(t *testing.T) {
	ref := videoReference([]byte{1}, "")
	if ref == nil {
		t.Fatal("expected a reference image")
	}
	if ref.MIMEType != "image/png" {
		t.Errorf("expected image/png default, got %q", ref.MIMEType)
	}
}
