package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/sellerdesk/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sellerdesk/internal/domain"
)

func TestFormSubmitRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.FormSubmitRequest
		wantErr bool
	}{
		{name: "missing fields", req: dto.FormSubmitRequest{}, wantErr: true},
		{name: "empty fields are accepted", req: dto.FormSubmitRequest{Fields: map[string]string{}}},
		{name: "slot values", req: dto.FormSubmitRequest{Fields: map[string]string{"name": "Books"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if verr.Fields["fields"] != "is required" {
				t.Errorf("Fields[fields] = %q, want %q", verr.Fields["fields"], "is required")
			}
		})
	}
}
