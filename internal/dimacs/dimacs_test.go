package dimacs

import (
	"compress/gzip"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yusuke-matsunaga/magus-sub008/internal/sat"
)

type instance struct {
	Variables int
	Clauses   [][]sat.Literal
}

func (i *instance) NewVar() sat.Variable {
	v := sat.Variable(i.Variables)
	i.Variables++
	return v
}

func (i *instance) AddClause(tmpClause []sat.Literal) error {
	clause := make([]sat.Literal, len(tmpClause))
	copy(clause, tmpClause)
	i.Clauses = append(i.Clauses, clause)
	return nil
}

const testCNF = `c a trivial 3-variable instance
p cnf 3 2
1 -2 3 0
-1 2 0
`

var want = instance{
	Variables: 3,
	Clauses: [][]sat.Literal{
		{sat.PositiveLiteral(0), sat.NegativeLiteral(1), sat.PositiveLiteral(2)},
		{sat.NegativeLiteral(0), sat.PositiveLiteral(1)},
	},
}

func TestReadDIMACS(t *testing.T) {
	got := instance{}
	if err := ReadDIMACS(strings.NewReader(testCNF), &got); err != nil {
		t.Fatalf("ReadDIMACS(): want no error, got %s", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadDIMACS(): mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDIMACS_missingHeader(t *testing.T) {
	got := instance{}
	if err := ReadDIMACS(strings.NewReader("c just a comment\n"), &got); err == nil {
		t.Errorf("ReadDIMACS(): want error, got none")
	}
}

func TestLoadDIMACS_noFile(t *testing.T) {
	got := instance{}
	if err := LoadDIMACS("", false, &got); err == nil {
		t.Errorf("LoadDIMACS(): want error, got none")
	}
}

func TestLoadDIMACS_gzip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/instance.cnf.gz"
	f, err := writeGzipFile(path, testCNF)
	if err != nil {
		t.Fatalf("could not write gzip fixture: %s", err)
	}
	defer f()

	got := instance{}
	if err := LoadDIMACS(path, true, &got); err != nil {
		t.Fatalf("LoadDIMACS(): want no error, got %s", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadDIMACS(): mismatch (-want +got):\n%s", diff)
	}
}

func writeGzipFile(path, content string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	gw := gzip.NewWriter(f)
	if _, err := gw.Write([]byte(content)); err != nil {
		f.Close()
		return nil, err
	}
	if err := gw.Close(); err != nil {
		f.Close()
		return nil, err
	}
	return func() { f.Close() }, nil
}
