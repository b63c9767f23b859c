package ledger

import (
	"github.com/google/uuid"
)

// JournalGenerator builds balanced batches for position lifecycle steps.
// Batches with zero journals are legal (a price update that consumed nothing)
// and are skipped by the core.
type JournalGenerator struct{}

func NewJournalGenerator() *JournalGenerator {
	return &JournalGenerator{}
}

func newJournal(
	batchID uuid.UUID,
	eventRef string,
	sequence int64,
	debit, credit AccountKey,
	assetID AssetID,
	amount int64,
	jType JournalType,
	timestampUs int64,
) Journal {
	return Journal{
		JournalID:     uuid.New(),
		BatchID:       batchID,
		EventRef:      eventRef,
		Sequence:      sequence,
		DebitAccount:  debit,
		CreditAccount: credit,
		AssetID:       assetID,
		Amount:        amount,
		JournalType:   jType,
		Timestamp:     timestampUs,
	}
}

// GenerateOpen records collateral entering a position's reserve.
func (jg *JournalGenerator) GenerateOpen(
	positionID uuid.UUID,
	assetID AssetID,
	collateral int64,
	eventRef string,
	sequence int64,
	timestampUs int64,
) *Batch {
	batch := &Batch{
		BatchID:   uuid.New(),
		EventRef:  eventRef,
		Sequence:  sequence,
		Timestamp: timestampUs,
	}
	batch.Journals = append(batch.Journals, newJournal(
		batch.BatchID, eventRef, sequence,
		NewPositionAccountKey(positionID, assetID),
		NewExternalAccountKey(SubTypeExternalCollateralIn, assetID),
		assetID, collateral, JournalTypeCollateralReserve, timestampUs,
	))
	return batch
}

// appendPenaltyLegs records the penalty split against the borrower's
// liability sink. LP + taker legs together equal the distributed penalty.
func (jg *JournalGenerator) appendPenaltyLegs(
	batch *Batch,
	assetID AssetID,
	toLP, toTaker int64,
	eventRef string,
	sequence int64,
	timestampUs int64,
) {
	charges := NewSystemAccountKey("penalty_charges", SubTypeSystemPenaltyCharges, assetID)
	if toLP > 0 {
		batch.Journals = append(batch.Journals, newJournal(
			batch.BatchID, eventRef, sequence,
			NewSystemAccountKey("lp_pool", SubTypeSystemLPPool, assetID),
			charges,
			assetID, toLP, JournalTypePenaltyLP, timestampUs,
		))
	}
	if toTaker > 0 {
		batch.Journals = append(batch.Journals, newJournal(
			batch.BatchID, eventRef, sequence,
			NewSystemAccountKey("taker_credits", SubTypeSystemTakerCredits, assetID),
			charges,
			assetID, toTaker, JournalTypePenaltyTaker, timestampUs,
		))
	}
}

// GenerateLiquidationStep records one step: collateral converted out of the
// reserve plus the penalty distribution for the step.
func (jg *JournalGenerator) GenerateLiquidationStep(
	positionID uuid.UUID,
	assetID AssetID,
	collateralDelta int64,
	toLP, toTaker int64,
	eventRef string,
	sequence int64,
	timestampUs int64,
) *Batch {
	batch := &Batch{
		BatchID:   uuid.New(),
		EventRef:  eventRef,
		Sequence:  sequence,
		Timestamp: timestampUs,
	}
	if collateralDelta > 0 {
		batch.Journals = append(batch.Journals, newJournal(
			batch.BatchID, eventRef, sequence,
			NewExternalAccountKey(SubTypeExternalLiquidated, assetID),
			NewPositionAccountKey(positionID, assetID),
			assetID, collateralDelta, JournalTypeCollateralLiquidate, timestampUs,
		))
	}
	jg.appendPenaltyLegs(batch, assetID, toLP, toTaker, eventRef, sequence, timestampUs)
	return batch
}

// GenerateRepay records remaining collateral leaving the reserve back to the
// owner together with the final penalty distribution.
func (jg *JournalGenerator) GenerateRepay(
	positionID uuid.UUID,
	assetID AssetID,
	collateralReturned int64,
	toLP, toTaker int64,
	eventRef string,
	sequence int64,
	timestampUs int64,
) *Batch {
	batch := &Batch{
		BatchID:   uuid.New(),
		EventRef:  eventRef,
		Sequence:  sequence,
		Timestamp: timestampUs,
	}
	if collateralReturned > 0 {
		batch.Journals = append(batch.Journals, newJournal(
			batch.BatchID, eventRef, sequence,
			NewExternalAccountKey(SubTypeExternalOwnerReturn, assetID),
			NewPositionAccountKey(positionID, assetID),
			assetID, collateralReturned, JournalTypeCollateralReturn, timestampUs,
		))
	}
	jg.appendPenaltyLegs(batch, assetID, toLP, toTaker, eventRef, sequence, timestampUs)
	return batch
}
