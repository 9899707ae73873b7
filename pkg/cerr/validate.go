package cerr

import (
	"errors"
	"strings"

	"buf.build/go/protovalidate"
	"google.golang.org/protobuf/proto"
)

// Validate checks msg against the buf.validate rules declared in its schema.
// A rule failure becomes an InvalidArgument *Error carrying one Violation
// detail per failed rule.
func Validate(msg proto.Message) error {
	err := protovalidate.Validate(msg)
	if err == nil {
		return nil
	}
	var valErr *protovalidate.ValidationError
	if !errors.As(err, &valErr) {
		return NewError(Internal, "server error", err)
	}
	e := NewError(InvalidArgument, "invalid request", err)
	msgs := make([]string, 0, len(valErr.Violations))
	for _, v := range valErr.Violations {
		e.Details = append(e.Details, v.Proto)
		msgs = append(msgs, protovalidate.FieldPathString(v.Proto.GetField())+": "+v.Proto.GetMessage())
	}
	if len(msgs) > 0 {
		e.Msg = strings.Join(msgs, "; ")
	}
	return e
}
