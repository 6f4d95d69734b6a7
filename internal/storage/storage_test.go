package storage

import (
	"testing"

	"ai-doc-parser/constants"
)

func TestHashContent(t *testing.T) {
	got := HashContent([]byte("hello"))
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got != want {
		t.Fatalf("HashContent = %s, want %s", got, want)
	}
	if HashContent([]byte("hello")) != got {
		t.Fatal("HashContent is not deterministic")
	}
	if HashContent([]byte("hello!")) == got {
		t.Fatal("different content produced the same hash")
	}
}

func TestBlobKey(t *testing.T) {
	hash := HashContent([]byte("contract"))

	key := BlobKey(constants.KindContract, hash, ".PDF")
	if key != "documents/"+hash+".pdf" {
		t.Fatalf("contract key = %s", key)
	}

	key = BlobKey(constants.KindPBMContract, hash, "docx")
	if key != "pbm_documents/"+hash+".docx" {
		t.Fatalf("pbm key = %s", key)
	}
}
