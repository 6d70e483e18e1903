package oidc

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultToServerError(t *testing.T) {
	type args struct {
		err         error
		description string
	}
	tests := []struct {
		name string
		args args
		want *Error
	}{
		{
			name: "default",
			args: args{
				err:         io.ErrClosedPipe,
				description: "oops",
			},
			want: &Error{
				ErrorType:   ServerError,
				Description: "oops",
				Parent:      io.ErrClosedPipe,
			},
		},
		{
			name: "our Error",
			args: args{
				err:         ErrInvalidClient().WithDescription("unknown client"),
				description: "oops",
			},
			want: &Error{
				ErrorType:   InvalidClient,
				Description: "unknown client",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultToServerError(tt.args.err, tt.args.description)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestError_LogLevel(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want slog.Level
	}{
		{
			name: "server error",
			err:  ErrServerError(),
			want: slog.LevelError,
		},
		{
			name: "some other error",
			err:  ErrInvalidRequest(),
			want: slog.LevelWarn,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.LogLevel()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestError_LogValue(t *testing.T) {
	type fields struct {
		Parent           error
		ErrorType        errorType
		Description      string
		State            string
		redirectDisabled bool
	}
	tests := []struct {
		name   string
		fields fields
		want   slog.Value
	}{
		{
			name: "parent",
			fields: fields{
				Parent: io.EOF,
			},
			want: slog.GroupValue(slog.Any("parent", io.EOF)),
		},
		{
			name: "description",
			fields: fields{
				Description: "oops",
			},
			want: slog.GroupValue(slog.String("description", "oops")),
		},
		{
			name: "errorType",
			fields: fields{
				ErrorType: InvalidClient,
			},
			want: slog.GroupValue(slog.String("type", string(InvalidClient))),
		},
		{
			name: "state",
			fields: fields{
				State: "123",
			},
			want: slog.GroupValue(slog.String("state", "123")),
		},
		{
			name: "all fields",
			fields: fields{
				Parent:           io.EOF,
				Description:      "oops",
				ErrorType:        InvalidRequest,
				State:            "123",
				redirectDisabled: true,
			},
			want: slog.GroupValue(
				slog.Any("parent", io.EOF),
				slog.String("description", "oops"),
				slog.String("type", string(InvalidRequest)),
				slog.String("state", "123"),
				slog.Bool("redirect_disabled", true),
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Error{
				Parent:           tt.fields.Parent,
				ErrorType:        tt.fields.ErrorType,
				Description:      tt.fields.Description,
				State:            tt.fields.State,
				redirectDisabled: tt.fields.redirectDisabled,
			}
			got := e.LogValue()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestError_Error(t *testing.T) {
	err := ErrInvalidRequest().WithDescription("post_logout_redirect_uri %s", "invalid").WithParent(io.EOF)
	assert.Equal(t, "ErrorType=invalid_request Description=post_logout_redirect_uri invalid Parent=EOF", err.Error())
	assert.ErrorIs(t, err, io.EOF)
}
