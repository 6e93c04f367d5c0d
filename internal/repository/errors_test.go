package repository

import (
	"database/sql"
	"errors"
	"net"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestClassifyDuplicateEntry(t *testing.T) {
	err := classify(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.com'"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("1062 must classify as ErrDuplicate, got %v", err)
	}
}

func TestClassifyServerError(t *testing.T) {
	err := classify(&mysql.MySQLError{Number: 1146, Message: "Table 'x' doesn't exist"})
	if !errors.Is(err, ErrQuery) {
		t.Fatalf("server error must classify as ErrQuery, got %v", err)
	}
	if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrDuplicate) {
		t.Fatalf("misclassified: %v", err)
	}
}

func TestClassifyConnectivity(t *testing.T) {
	cases := []error{
		&net.OpError{Op: "dial", Err: errors.New("connection refused")},
		mysql.ErrInvalidConn,
		sql.ErrConnDone,
	}
	for _, in := range cases {
		if err := classify(in); !errors.Is(err, ErrUnavailable) {
			t.Fatalf("classify(%v) = %v, want ErrUnavailable", in, err)
		}
	}
}

func TestClassifyPassThrough(t *testing.T) {
	if classify(nil) != nil {
		t.Fatal("nil must stay nil")
	}
	if err := classify(sql.ErrNoRows); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("sql.ErrNoRows must pass through, got %v", err)
	}
}
