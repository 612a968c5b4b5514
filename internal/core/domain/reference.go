package domain

// ReferenceKind names a reference-data table checked during commits.
type ReferenceKind string

const (
	RefCurrency ReferenceKind = "currency"
	RefAccount  ReferenceKind = "account"
	RefSupplier ReferenceKind = "supplier"
)

// ReferenceForChargeTarget maps a charge target type to the table holding its ids.
func ReferenceForChargeTarget(t ChargeTargetType) ReferenceKind {
	if t == ChargeSupplier {
		return RefSupplier
	}
	return RefAccount
}
