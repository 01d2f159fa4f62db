package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version é a última migração conhecida pelo binário
const Version = 2
