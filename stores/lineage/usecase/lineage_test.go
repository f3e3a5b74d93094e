package usecase

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/lineage"
	"github.com/braav-io/setup/domain/mocks"
)

var (
	mockCtx   = bCtx.Background()
	lineageId = domain.Address("0x00000000000000000000000000000000000000000000000000000000000000ee")
	addrA     = domain.Address("0x000000000000000000000000000000000000000000000000000000000000000a")
	addrB     = domain.Address("0x000000000000000000000000000000000000000000000000000000000000000b")
)

type lineageSuite struct {
	suite.Suite
	object  *mocks.ObjectUseCase
	subject lineage.UseCase
}

func TestLineage(t *testing.T) {
	suite.Run(t, new(lineageSuite))
}

func (s *lineageSuite) SetupTest() {
	s.object = mocks.NewObjectUseCase(s.T())
	s.subject = New(&LineageUseCaseCfg{Object: s.object})
}

func record(recipient, quantity, timestamp interface{}) map[string]interface{} {
	fields := map[string]interface{}{}
	if recipient != nil {
		fields["recipient"] = recipient
	}
	if quantity != nil {
		fields["quantity"] = quantity
	}
	if timestamp != nil {
		fields["timestamp"] = timestamp
	}
	return map[string]interface{}{"type": "lineage::Record", "fields": fields}
}

func lineageObject(records interface{}) *domain.ObjectData {
	fields, _ := json.Marshal(map[string]interface{}{"records": records})
	return &domain.ObjectData{
		ObjectId: lineageId,
		Content: &domain.MoveContent{
			DataType: domain.DataTypeMoveObject,
			Fields:   fields,
		},
	}
}

func ts(ms int64) string {
	return time.UnixMilli(ms).Local().Format(lineage.TimestampLayout)
}

func (s *lineageSuite) TestAccumulatesOlderRecords() {
	s.object.On("Get", mockCtx, lineageId, contentOpts).Return(lineageObject([]interface{}{
		record(addrA, "5", "100"),
		record(addrA, "3", "50"),
		record(addrB, "2", "200"),
	}), nil).Once()

	entries, err := s.subject.GetLineage(mockCtx, lineageId)
	s.Require().NoError(err)
	s.Equal([]lineage.Entry{
		{Recipient: addrA, Quantity: "8", Timestamp: ts(100)},
		{Recipient: addrB, Quantity: "2", Timestamp: ts(200)},
	}, entries)
}

func (s *lineageSuite) TestNewerRecordReplaces() {
	s.object.On("Get", mockCtx, lineageId, contentOpts).Return(lineageObject([]interface{}{
		record(addrA, "5", "100"),
		record(addrA, "3", "150"),
	}), nil).Once()

	entries, err := s.subject.GetLineage(mockCtx, lineageId)
	s.Require().NoError(err)
	s.Equal([]lineage.Entry{{Recipient: addrA, Quantity: "3", Timestamp: ts(150)}}, entries)
}

func (s *lineageSuite) TestEqualTimestampAccumulates() {
	s.object.On("Get", mockCtx, lineageId, contentOpts).Return(lineageObject([]interface{}{
		record(addrA, 5, 100),
		record(addrA, 4, 100),
	}), nil).Once()

	entries, err := s.subject.GetLineage(mockCtx, lineageId)
	s.Require().NoError(err)
	s.Equal([]lineage.Entry{{Recipient: addrA, Quantity: "9", Timestamp: ts(100)}}, entries)
}

func (s *lineageSuite) TestSkipsInvalidRecords() {
	s.object.On("Get", mockCtx, lineageId, contentOpts).Return(lineageObject([]interface{}{
		record(addrA, "abc", "100"),
		record(addrA, "5x", "100"),
		record(addrB, "2", "200"),
		record("0x1234", "7", "300"),
		record(nil, "7", "300"),
		record(addrA, "1", nil),
		record(addrA, "1", "later"),
		record(addrA, nil, "100"),
	}), nil).Once()

	entries, err := s.subject.GetLineage(mockCtx, lineageId)
	s.Require().NoError(err)
	s.Equal([]lineage.Entry{{Recipient: addrB, Quantity: "2", Timestamp: ts(200)}}, entries)
}

func (s *lineageSuite) TestLargeQuantities() {
	s.object.On("Get", mockCtx, lineageId, contentOpts).Return(lineageObject([]interface{}{
		record(addrA, "18446744073709551615", "1"),
		record(addrA, "1", "1"),
	}), nil).Once()

	entries, err := s.subject.GetLineage(mockCtx, lineageId)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("18446744073709551616", entries[0].Quantity)
}

func (s *lineageSuite) TestNoRecords() {
	cases := []interface{}{
		[]interface{}{},
		[]interface{}{record(addrA, "x", "1")},
		"not an array",
		nil,
	}
	for i, records := range cases {
		s.Run(fmt.Sprint(i), func() {
			object := mocks.NewObjectUseCase(s.T())
			object.On("Get", mockCtx, lineageId, contentOpts).Return(lineageObject(records), nil).Once()
			subject := New(&LineageUseCaseCfg{Object: object})

			entries, err := subject.GetLineage(mockCtx, lineageId)
			s.ErrorIs(err, domain.ErrNoLineageRecords)
			s.Nil(entries)
		})
	}
}

func (s *lineageSuite) TestNotMoveObject() {
	s.object.On("Get", mockCtx, lineageId, contentOpts).Return(&domain.ObjectData{
		ObjectId: lineageId,
		Content:  &domain.MoveContent{DataType: domain.DataTypePackage},
	}, nil).Once()

	_, err := s.subject.GetLineage(mockCtx, lineageId)
	s.ErrorIs(err, domain.ErrNotMoveObject)
}

func (s *lineageSuite) TestFetchFailureAborts() {
	s.object.On("Get", mockCtx, lineageId, contentOpts).Return(nil, domain.ErrObjectNotExists).Once()

	_, err := s.subject.GetLineage(mockCtx, lineageId)
	s.ErrorIs(err, domain.ErrObjectNotExists)
}

func (s *lineageSuite) TestAwaitLastRecord() {
	s.object.On("GetWithRetry", mockCtx, lineageId, contentOpts).Return(lineageObject([]interface{}{
		record(addrA, "5", "100"),
		record(addrB, "1", "250"),
	}), nil).Once()

	entry, err := s.subject.AwaitLastRecord(mockCtx, lineageId)
	s.Require().NoError(err)
	s.Equal(&lineage.Entry{Recipient: addrB, Quantity: "1", Timestamp: ts(250)}, entry)
}

func (s *lineageSuite) TestAwaitLastRecordEmpty() {
	s.object.On("GetWithRetry", mockCtx, lineageId, contentOpts).Return(lineageObject([]interface{}{}), nil).Once()

	entry, err := s.subject.AwaitLastRecord(mockCtx, lineageId)
	s.Require().NoError(err)
	s.Nil(entry)
}

func (s *lineageSuite) TestAwaitLastRecordRetryExhausted() {
	s.object.On("GetWithRetry", mockCtx, lineageId, contentOpts).Return(nil, domain.ErrRetryExhausted).Once()

	_, err := s.subject.AwaitLastRecord(mockCtx, lineageId)
	s.ErrorIs(err, domain.ErrRetryExhausted)
}
