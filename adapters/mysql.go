package adapters

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/hr-tools/hrdb/core"
	"github.com/hr-tools/hrdb/core/builders"
)

// Register client
func init() {
	_ = register(&MySQL{}, "mysql")
}

type MySQL struct{}

func (m *MySQL) Connect(url string) (core.Driver, error) {
	db, err := sql.Open("mysql", url)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mysql database: %v", err)
	}

	return &mySQLDriver{
		c: builders.NewClient(db),
	}, nil
}
