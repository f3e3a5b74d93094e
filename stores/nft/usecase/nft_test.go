package usecase

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/braav-io/setup/base/ctx"
	"github.com/braav-io/setup/domain"
	"github.com/braav-io/setup/domain/lineage"
	"github.com/braav-io/setup/domain/mocks"
	"github.com/braav-io/setup/domain/nft"
	txUsecase "github.com/braav-io/setup/stores/transaction/usecase"
)

var (
	mockCtx = bCtx.Background()

	pkg          = domain.Address("0x5a7d1d0d2a9e7cde1b92a0b1d0bb2e0e4b8c2f1e3d4c5b6a79880716253443aa")
	supplyCapId  = domain.Address("0x0000000000000000000000000000000000000000000000000000000000000c01")
	creatorCapId = domain.Address("0x0000000000000000000000000000000000000000000000000000000000000c02")
	lineageId    = domain.Address("0x0000000000000000000000000000000000000000000000000000000000000c03")
	counterId    = domain.Address("0x0000000000000000000000000000000000000000000000000000000000000c04")
	nftId        = domain.Address("0x0000000000000000000000000000000000000000000000000000000000000d01")
	recipientA   = domain.Address("0x000000000000000000000000000000000000000000000000000000000000000a")
	recipientB   = domain.Address("0x000000000000000000000000000000000000000000000000000000000000000b")

	braav1 = nft.VariantType(pkg, "BRAAV1")
	braav3 = nft.VariantType(pkg, "BRAAV3")
)

type fakeSigner struct{}

func (fakeSigner) Address() domain.Address {
	return "0x00000000000000000000000000000000000000000000000000000000000000ff"
}

func (fakeSigner) PrivateKey() ed25519.PrivateKey {
	return nil
}

type nftSuite struct {
	suite.Suite
	client  *mocks.SuiClientRepo
	object  *mocks.ObjectUseCase
	lineage *mocks.LineageUseCase
	signer  fakeSigner
	subject nft.UseCase
}

func TestNft(t *testing.T) {
	suite.Run(t, new(nftSuite))
}

func (s *nftSuite) SetupTest() {
	s.client = mocks.NewSuiClientRepo(s.T())
	s.object = mocks.NewObjectUseCase(s.T())
	s.lineage = mocks.NewLineageUseCase(s.T())
	s.subject = New(&NftUseCaseCfg{
		Transaction:  txUsecase.NewTransactionUseCase(&txUsecase.TransactionUseCaseCfg{Client: s.client, Signer: s.signer}),
		Object:       s.object,
		Lineage:      s.lineage,
		PackageId:    pkg,
		SupplyCapId:  supplyCapId,
		CreatorCapId: creatorCapId,
		LineageId:    lineageId,
		CounterId:    counterId,
		GasBudget:    10000000,
	})
}

func request(fn string, variant domain.StructTag, args ...interface{}) domain.TransactionRequest {
	return domain.TransactionRequest{
		Calls: []domain.MoveCall{{
			Package:       pkg,
			Module:        nft.ModulePublic,
			Function:      fn,
			TypeArguments: []string{variant.String()},
			Arguments:     args,
		}},
		GasBudget: 10000000,
	}
}

func success(digest string, created ...domain.ObjectChange) *domain.TransactionResponse {
	return &domain.TransactionResponse{
		Digest: digest,
		Effects: &domain.TransactionEffects{
			Status: domain.ExecutionStatus{Status: domain.ExecutionStatusSuccess},
			GasUsed: domain.GasCostSummary{
				ComputationCost: "1000000",
				StorageCost:     "2000000",
				StorageRebate:   "500000",
			},
		},
		ObjectChanges: created,
	}
}

func createdChange(t domain.StructTag, id domain.ObjectId) domain.ObjectChange {
	return domain.ObjectChange{Type: domain.ObjectChangeCreated, ObjectType: t.String(), ObjectId: id}
}

func supplyCap(variant domain.StructTag) *domain.ObjectData {
	return &domain.ObjectData{
		ObjectId: supplyCapId,
		Type:     domain.NewStructTag(pkg, nft.ModulePublic, nft.StructSupplyCap, domain.StructType(variant)).String(),
	}
}

func (s *nftSuite) TestUpdateMetadata() {
	s.client.On("SignAndExecute", mockCtx, s.signer,
		request("update_nft", braav1, creatorCapId, nftId, "New Name", "COIN_9")).
		Return(success("d1"), nil).Once()

	resp, err := s.subject.UpdateMetadata(mockCtx, nft.UpdateMetadataInput{
		NftId:   nftId,
		Name:    "New Name",
		CoinId:  "COIN_9",
		Variant: braav1,
	})
	s.Require().NoError(err)
	s.Equal("d1", resp.Digest)
}

func (s *nftSuite) TestUpdateMetadataFailedStatus() {
	failed := success("d1")
	failed.Effects.Status = domain.ExecutionStatus{Status: "failure", Error: "MoveAbort"}
	s.client.On("SignAndExecute", mockCtx, s.signer, mock.Anything).Return(failed, nil).Once()

	_, err := s.subject.UpdateMetadata(mockCtx, nft.UpdateMetadataInput{NftId: nftId, Variant: braav1})
	s.ErrorIs(err, domain.ErrTransactionFailed)
}

func (s *nftSuite) TestUpdateMetadataInvalidNft() {
	_, err := s.subject.UpdateMetadata(mockCtx, nft.UpdateMetadataInput{NftId: "0xnope", Variant: braav1})
	s.ErrorIs(err, domain.ErrInvalidAddress)
}

func (s *nftSuite) TestMint() {
	s.client.On("SignAndExecute", mockCtx, s.signer,
		request("mint_and_transfer", braav1, "NFT_Example", "COIN_123", supplyCapId, lineageId, counterId, recipientA, domain.ClockObjectId)).
		Return(success("d2",
			createdChange(nft.RestrictedNFTType(pkg, braav1), "0x0000000000000000000000000000000000000000000000000000000000000bad"),
			createdChange(nft.NFTType(pkg, braav1), nftId),
		), nil).Once()
	last := &lineage.Entry{Recipient: recipientA, Quantity: "1", Timestamp: "2024-01-01 00:00:00"}
	s.lineage.On("AwaitLastRecord", mockCtx, lineageId).Return(last, nil).Once()

	res, err := s.subject.Mint(mockCtx, nft.MintInput{
		Name:      "NFT_Example",
		CoinId:    "COIN_123",
		Recipient: recipientA,
		Variant:   braav1,
	})
	s.Require().NoError(err)
	s.Equal(&nft.MintResult{
		Digest:     "d2",
		Recipient:  recipientA,
		NftId:      nftId,
		LastRecord: last,
		GasCostSui: "0.0025",
	}, res)
}

func (s *nftSuite) TestMintNftNotInChanges() {
	s.client.On("SignAndExecute", mockCtx, s.signer, mock.Anything).Return(success("d2"), nil).Once()
	s.lineage.On("AwaitLastRecord", mockCtx, lineageId).Return(nil, nil).Once()

	res, err := s.subject.Mint(mockCtx, nft.MintInput{Recipient: recipientA, Variant: braav1})
	s.Require().NoError(err)
	s.Equal(domain.Address(nft.NotFound), res.NftId)
	s.Nil(res.LastRecord)
}

func (s *nftSuite) TestMintFailedStatusSkipsLineage() {
	failed := success("d2")
	failed.Effects.Status.Status = "failure"
	s.client.On("SignAndExecute", mockCtx, s.signer, mock.Anything).Return(failed, nil).Once()

	_, err := s.subject.Mint(mockCtx, nft.MintInput{Recipient: recipientA, Variant: braav1})
	s.ErrorIs(err, domain.ErrTransactionFailed)
	s.lineage.AssertNotCalled(s.T(), "AwaitLastRecord", mock.Anything, mock.Anything)
}

func (s *nftSuite) TestMintInvalidRecipient() {
	_, err := s.subject.Mint(mockCtx, nft.MintInput{Recipient: "0x12", Variant: braav1})
	s.ErrorIs(err, domain.ErrInvalidAddress)
}

func (s *nftSuite) TestMintRestricted() {
	s.client.On("SignAndExecute", mockCtx, s.signer,
		request("mint_restricted", braav3, creatorCapId, supplyCapId, lineageId, counterId, recipientB, "Gold", "COIN_1", domain.ClockObjectId)).
		Return(success("d3",
			createdChange(nft.NFTType(pkg, braav3), "0x0000000000000000000000000000000000000000000000000000000000000bad"),
			createdChange(nft.RestrictedNFTType(pkg, braav3), nftId),
		), nil).Once()
	s.lineage.On("AwaitLastRecord", mockCtx, lineageId).Return(nil, nil).Once()

	res, err := s.subject.MintRestricted(mockCtx, nft.MintInput{
		Name:      "Gold",
		CoinId:    "COIN_1",
		Recipient: recipientB,
		Variant:   braav3,
	})
	s.Require().NoError(err)
	s.Equal(nftId, res.NftId)
}

func (s *nftSuite) TestMintBatch() {
	s.object.On("Get", mockCtx, supplyCapId, typeOpts).Return(supplyCap(braav1), nil).Once()
	nftType := nft.NFTType(pkg, braav1)
	for _, r := range []domain.Address{recipientA, recipientB} {
		s.client.On("SignAndExecute", mockCtx, s.signer,
			request("mint_and_transfer", braav1, "Gen_1", "COIN_1", supplyCapId, lineageId, counterId, r, domain.ClockObjectId)).
			Return(success("d-"+string(r[len(r)-1:])+"-1", createdChange(nftType, nftId)), nil).Once()
		s.client.On("SignAndExecute", mockCtx, s.signer,
			request("mint_and_transfer", braav1, "Gen_2", "COIN_2", supplyCapId, lineageId, counterId, r, domain.ClockObjectId)).
			Return(success("d-"+string(r[len(r)-1:])+"-2"), nil).Once()
	}

	res, err := s.subject.MintBatch(mockCtx, nft.BatchMintInput{
		Recipients: []domain.Address{recipientA, recipientB},
		Quantity:   2,
		NamePrefix: "Gen",
	})
	s.Require().NoError(err)
	s.True(res.Variant.Equals(braav1))
	s.Equal([]nft.MintedNFT{
		{Recipient: recipientA, Name: "Gen_1", CoinId: "COIN_1", Digest: "d-a-1", NftId: nftId.String()},
		{Recipient: recipientA, Name: "Gen_2", CoinId: "COIN_2", Digest: "d-a-2", NftId: nft.NotFound},
		{Recipient: recipientB, Name: "Gen_1", CoinId: "COIN_1", Digest: "d-b-1", NftId: nftId.String()},
		{Recipient: recipientB, Name: "Gen_2", CoinId: "COIN_2", Digest: "d-b-2", NftId: nft.NotFound},
	}, res.Minted)
}

func (s *nftSuite) TestMintBatchStopsOnFailure() {
	s.object.On("Get", mockCtx, supplyCapId, typeOpts).Return(supplyCap(braav1), nil).Once()
	failed := success("d1")
	failed.Effects.Status.Status = "failure"
	s.client.On("SignAndExecute", mockCtx, s.signer, mock.Anything).Return(failed, nil).Once()

	_, err := s.subject.MintBatch(mockCtx, nft.BatchMintInput{
		Recipients: []domain.Address{recipientA, recipientB},
		Quantity:   3,
	})
	s.ErrorIs(err, domain.ErrTransactionFailed)
	s.client.AssertNumberOfCalls(s.T(), "SignAndExecute", 1)
}

func (s *nftSuite) TestMintBatchInvalidInput() {
	_, err := s.subject.MintBatch(mockCtx, nft.BatchMintInput{Quantity: 1})
	s.ErrorIs(err, ErrNoRecipients)

	_, err = s.subject.MintBatch(mockCtx, nft.BatchMintInput{Recipients: []domain.Address{recipientA}, Quantity: 0})
	s.ErrorIs(err, ErrInvalidQuantity)

	_, err = s.subject.MintBatch(mockCtx, nft.BatchMintInput{Recipients: []domain.Address{recipientA, "0xbad"}, Quantity: 1})
	s.ErrorIs(err, domain.ErrInvalidAddress)
}

func (s *nftSuite) TestMintBatchUntypedSupplyCap() {
	s.object.On("Get", mockCtx, supplyCapId, typeOpts).Return(&domain.ObjectData{
		ObjectId: supplyCapId,
		Type:     string(pkg) + "::braav_public::SupplyCap",
	}, nil).Once()

	_, err := s.subject.MintBatch(mockCtx, nft.BatchMintInput{Recipients: []domain.Address{recipientA}, Quantity: 1})
	s.ErrorIs(err, ErrInvalidSupplyCapType)
}

func (s *nftSuite) TestUpdateSupply() {
	s.object.On("Get", mockCtx, supplyCapId, typeOpts).Return(supplyCap(braav1), nil).Once()
	s.client.On("SignAndExecute", mockCtx, s.signer,
		request("update_supply", braav1, creatorCapId, supplyCapId, "500000", counterId)).
		Return(success("d4"), nil).Once()

	resp, err := s.subject.UpdateSupply(mockCtx, nft.UpdateSupplyInput{NewLimit: 500000, Variant: braav1})
	s.Require().NoError(err)
	s.Equal("d4", resp.Digest)
}

func (s *nftSuite) TestUpdateSupplyTypeMismatch() {
	s.object.On("Get", mockCtx, supplyCapId, typeOpts).Return(supplyCap(braav3), nil).Once()

	_, err := s.subject.UpdateSupply(mockCtx, nft.UpdateSupplyInput{NewLimit: 10, Variant: braav1})
	s.ErrorIs(err, domain.ErrTypeMismatch)
}

func (s *nftSuite) TestUpdateSupplyInvalidVariant() {
	_, err := s.subject.UpdateSupply(mockCtx, nft.UpdateSupplyInput{NewLimit: 10, Variant: nft.VariantType(pkg, "BRAAV9")})
	s.ErrorIs(err, domain.ErrInvalidVariant)
	s.Contains(err.Error(), "Must be one of")
}

func (s *nftSuite) TestUpdateSupplyZeroLimit() {
	_, err := s.subject.UpdateSupply(mockCtx, nft.UpdateSupplyInput{NewLimit: 0, Variant: braav1})
	s.ErrorIs(err, ErrInvalidSupplyLimit)
}

func (s *nftSuite) TestRead() {
	s.object.On("Get", mockCtx, nftId, readOpts).Return(&domain.ObjectData{
		ObjectId: nftId,
		Content: &domain.MoveContent{
			DataType: domain.DataTypeMoveObject,
			Type:     nft.NFTType(pkg, braav1).String(),
			Fields:   []byte(`{"name":"NFT_Example","coin_id":"COIN_1","mint_number":"7","restricted":true}`),
		},
		Display: &domain.DisplayFields{Data: map[string]interface{}{"name": "NFT_Example"}},
	}, nil).Once()

	res, err := s.subject.Read(mockCtx, nftId)
	s.Require().NoError(err)
	s.Equal(nft.Metadata{
		Name:       "NFT_Example",
		CoinId:     "COIN_1",
		MintNumber: "7",
		Issuer:     nft.NotFound,
		Timestamp:  nft.NotFound,
		Restricted: true,
		Type:       nft.NFTType(pkg, braav1).String(),
	}, res.Metadata)
	s.Equal(map[string]interface{}{"name": "NFT_Example"}, res.DisplayData)
}

func (s *nftSuite) TestReadWithoutDisplay() {
	s.object.On("Get", mockCtx, nftId, readOpts).Return(&domain.ObjectData{
		ObjectId: nftId,
		Content:  &domain.MoveContent{DataType: domain.DataTypeMoveObject, Fields: []byte(`{}`)},
	}, nil).Once()

	res, err := s.subject.Read(mockCtx, nftId)
	s.Require().NoError(err)
	s.False(res.Metadata.Restricted)
	s.Nil(res.DisplayData)
}

func (s *nftSuite) TestReadFailures() {
	s.object.On("Get", mockCtx, nftId, readOpts).Return(nil, domain.ErrObjectNotExists).Once()
	_, err := s.subject.Read(mockCtx, nftId)
	s.ErrorIs(err, domain.ErrObjectNotExists)
	s.Contains(err.Error(), "Failed to fetch NFT")

	s.object.On("Get", mockCtx, nftId, readOpts).Return(&domain.ObjectData{
		ObjectId: nftId,
		Content:  &domain.MoveContent{DataType: domain.DataTypePackage},
	}, nil).Once()
	_, err = s.subject.Read(mockCtx, nftId)
	s.ErrorIs(err, domain.ErrNotMoveObject)
	s.Contains(err.Error(), "No content data found for NFT")
}
