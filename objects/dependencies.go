package objects

// EdgeAdder is the part of a dependency graph the default wiring needs.
type EdgeAdder interface {
	AddEdge(before, after string) error
}

// DefaultDependencies returns the built-in load-order constraints as
// (prerequisite, dependent) pairs. Masters come before the transactional
// data that references them.
func DefaultDependencies() [][2]string {
	return [][2]string{
		{"BusinessPartner", "CustomerOpenItem"},
		{"BusinessPartner", "VendorOpenItem"},
		{"BusinessPartner", "CreditLimit"},
		{"BusinessPartner", "SalesOrder"},
		{"BusinessPartner", "PurchaseOrder"},
		{"CustomerMaster", "CustomerOpenItem"},
		{"CustomerMaster", "SalesOrder"},
		{"CustomerMaster", "SalesContract"},
		{"CustomerMaster", "Delivery"},
		{"CustomerMaster", "CustomerMaterialInfo"},
		{"CustomerMaster", "CreditLimit"},
		{"CustomerMaster", "PricingCondition"},
		{"SupplierMaster", "VendorOpenItem"},
		{"SupplierMaster", "PurchaseOrder"},
		{"SupplierMaster", "PurchaseRequisition"},
		{"SupplierMaster", "PurchaseContract"},
		{"SupplierMaster", "PurchasingInfoRecord"},
		{"SupplierMaster", "SourceList"},
		{"GLAccountMaster", "GLOpenItem"},
		{"GLAccountMaster", "CustomerOpenItem"},
		{"GLAccountMaster", "VendorOpenItem"},
		{"CostCenter", "InternalOrder"},
		{"CostCenter", "CostCenterPlan"},
		{"CostCenter", "ActivityType"},
		{"CostCenter", "WorkCenter"},
		{"ProfitCenter", "CostCenter"},
		{"ActivityType", "CostCenterPlan"},
		{"MaterialMaster", "MaterialBOM"},
		{"MaterialMaster", "Routing"},
		{"MaterialMaster", "PurchasingInfoRecord"},
		{"MaterialMaster", "SourceList"},
		{"MaterialMaster", "MaterialInventoryBalance"},
		{"MaterialMaster", "BatchMaster"},
		{"MaterialMaster", "MaterialClassification"},
		{"MaterialMaster", "ProductionVersion"},
		{"MaterialMaster", "PlannedIndependentRequirement"},
		{"MaterialMaster", "InspectionPlan"},
		{"MaterialMaster", "SalesOrder"},
		{"MaterialMaster", "PurchaseOrder"},
		{"MaterialMaster", "CustomerMaterialInfo"},
		{"WorkCenter", "Routing"},
		{"MaterialBOM", "ProductionVersion"},
		{"Routing", "ProductionVersion"},
		{"ProductionVersion", "ProductionOrder"},
		{"SalesOrder", "Delivery"},
		{"FixedAssetMaster", "AssetBalance"},
		{"EquipmentMaster", "MaintenancePlan"},
		{"FunctionalLocation", "EquipmentMaster"},
		{"PaymentTerms", "CustomerMaster"},
		{"PaymentTerms", "SupplierMaster"},
		{"ExchangeRate", "GLOpenItem"},
	}
}

// WireDefaultDependencies adds every default constraint to the graph.
func WireDefaultDependencies(graph EdgeAdder) error {
	for _, edge := range DefaultDependencies() {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return err
		}
	}
	return nil
}
