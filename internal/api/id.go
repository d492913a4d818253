package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ID is a 64-bit row identifier rendered as a decimal string in JSON so that
// browser clients never lose precision. Input accepts strings and numbers.
type ID int64

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid identifier %q", s)
	}
	*id = ID(v)
	return nil
}

func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid identifier %q", s)
	}
	return ID(v), nil
}

// PathID parses the named path parameter. On failure it writes a 400 and
// returns false.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := ParseID(c.Param(name))
	if err != nil {
		Error(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id.Int64(), true
}
