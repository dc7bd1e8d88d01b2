package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code string
		want Kind
	}{
		{"CREATE TABLE t (id INT)", KindCreate},
		{"create index i on t (id)", KindCreate},
		{"DROP TABLE t", KindDrop},
		{"INSERT INTO t VALUES (1)", KindInsert},
		{"UPDATE t SET x = 1", KindUpdate},
		{"DELETE FROM t", KindDelete},
		{"SELECT * FROM t", KindSelect},
		{"BEGIN TRANSACTION", KindBegin},
		{"begin", KindBegin},
		{"COMMIT", KindCommit},
		{"ROLLBACK", KindRollback},
		{"-- note\nVACUUM", KindOther},
		{"GRANT ALL ON t TO alice", KindOther},
		{"", KindUnknown},
		{"/* comment only */", KindUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.code), "Classify(%q)", tt.code)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "create", KindCreate.String())
	assert.Equal(t, "select", KindSelect.String())
	assert.Equal(t, "rollback", KindRollback.String())
	assert.Equal(t, "other", KindOther.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
