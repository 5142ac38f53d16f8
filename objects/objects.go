// Package objects declares the built-in migration objects: their field
// mappings, quality checks, deterministic mock fixtures, and live source
// queries. Declarations are data; the pipeline machinery lives in core and
// runner.
package objects

import (
	"github.com/ib823/sapconnect-sub002/core"
)

// declaration is the full static description of one migration object.
type declaration struct {
	id       string
	name     string
	table    string
	fields   []string
	mappings []core.FieldMappingRule
	checks   core.QualityChecks
	mock     func() []core.Record
}

type object struct {
	decl declaration
}

func (o *object) ObjectID() string { return o.decl.id }

func (o *object) Name() string { return o.decl.name }

func (o *object) FieldMappings() []core.FieldMappingRule {
	return core.CopyRules(o.decl.mappings)
}

func (o *object) QualityChecks() core.QualityChecks { return o.decl.checks }

func (o *object) ExtractMock() []core.Record {
	if o.decl.mock == nil {
		return nil
	}
	return o.decl.mock()
}

func (o *object) SourceQuery() core.SourceQuery {
	return core.SourceQuery{
		Table:  o.decl.table,
		Fields: append([]string(nil), o.decl.fields...),
	}
}

var (
	_ core.MigrationObject = (*object)(nil)
	_ core.TableSourced    = (*object)(nil)
)

// Builtins lists every built-in object factory in dependency-friendly
// declaration order: masters first, transactional data after.
func Builtins() []core.ObjectFactory {
	return []core.ObjectFactory{
		// Master data.
		newBusinessPartner,
		newCustomerMaster,
		newSupplierMaster,
		newBankMaster,
		newMaterialMaster,
		newMaterialClassification,
		newBatchMaster,
		newGLAccountMaster,
		newCostCenter,
		newProfitCenter,
		newActivityType,
		newInternalOrder,
		newFixedAssetMaster,
		newEquipmentMaster,
		newFunctionalLocation,
		newWorkCenter,
		newMaintenancePlan,
		newInspectionPlan,
		newPurchasingInfoRecord,
		newSourceList,
		newPricingCondition,
		newCustomerMaterialInfo,
		newExchangeRate,
		newPaymentTerms,
		// Transactional data.
		newCustomerOpenItem,
		newVendorOpenItem,
		newGLOpenItem,
		newMaterialInventoryBalance,
		newPurchaseOrder,
		newPurchaseRequisition,
		newSalesOrder,
		newSalesContract,
		newDelivery,
		newProductionOrder,
		newPlannedIndependentRequirement,
		newMaterialBOM,
		newRouting,
		newProductionVersion,
		newCostCenterPlan,
		newAssetBalance,
		newCreditLimit,
		newPurchaseContract,
	}
}

// RegisterBuiltins registers every built-in object on the registry.
func RegisterBuiltins(registry *core.ObjectRegistry) error {
	for _, factory := range Builtins() {
		if err := registry.Register(factory); err != nil {
			return err
		}
	}
	return nil
}
