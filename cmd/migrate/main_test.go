package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDDLStatements(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "empty",
			content: "",
			want:    nil,
		},
		{
			name:    "comments only",
			content: "-- nothing here\n\n-- still nothing\n",
			want:    nil,
		},
		{
			name: "two statements with comments",
			content: `-- users
CREATE TABLE users (
  user_id STRING(36) NOT NULL,
) PRIMARY KEY (user_id);

-- index
CREATE UNIQUE INDEX idx_users_email ON users(email);
`,
			want: []string{
				"CREATE TABLE users (\nuser_id STRING(36) NOT NULL,\n) PRIMARY KEY (user_id)",
				"CREATE UNIQUE INDEX idx_users_email ON users(email)",
			},
		},
		{
			name:    "missing trailing semicolon",
			content: "CREATE INDEX a ON t(x);\nCREATE INDEX b ON t(y)",
			want:    []string{"CREATE INDEX a ON t(x)", "CREATE INDEX b ON t(y)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitDDLStatements(tt.content))
		})
	}
}
