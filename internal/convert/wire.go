// Package convert maps domain values to wire messages and back.
package convert

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/token-queue/gen/go/tokenqueue/v1"
	"github.com/and161185/token-queue/internal/model"
)

// ToWireShopState projects a shop state for clients. Owner identity is not exposed.
func ToWireShopState(s model.ShopState) *pb.ShopState {
	return &pb.ShopState{
		Id:            s.Shop.ID.String(),
		Code:          s.Shop.Code,
		Name:          s.Shop.Name,
		ServingNumber: s.Shop.ServingNumber,
		IsOpen:        s.Shop.IsOpen,
		Date:          string(s.Shop.LastResetDate),
		Status:        string(s.Status),
		Issued:        s.Issued,
		Waiting:       s.Waiting,
		DaysRemaining: int32(s.DaysRemaining),
	}
}

// ToWireIssueResult converts an issuance outcome.
func ToWireIssueResult(r model.IssueResult) *pb.IssueTokenResponse {
	return &pb.IssueTokenResponse{
		Number:        r.Number,
		AlreadyIssued: r.AlreadyIssued,
		Serving:       r.Serving,
		Status:        string(r.Status),
	}
}

// ToWireTokenState converts a reconciled token.
func ToWireTokenState(t model.TokenState) *pb.MyTokenResponse {
	return &pb.MyTokenResponse{
		Number:  t.Number,
		Expired: t.Expired,
		Called:  t.Called,
		Ahead:   t.Ahead,
		Serving: t.Serving,
	}
}

// ToWireLogin converts login results.
func ToWireLogin(t model.Tokens, o model.Owner) *pb.LoginResponse {
	return &pb.LoginResponse{
		AccessToken: t.AccessToken,
		ExpiresAt:   timestamppb.New(t.ExpiresAt),
		OwnerId:     o.ID.String(),
	}
}

// FromWireStatus parses a status string; unknown values map to inactive.
func FromWireStatus(s string) model.Status {
	switch st := model.Status(s); st {
	case model.StatusActive, model.StatusOwnerClosed:
		return st
	default:
		return model.StatusInactive
	}
}
