// Package rbac contiene el catálogo fijo de permisos y la derivación de los roles base.
// Es dominio puro: sin dependencias de infraestructura.
package rbac

import "github.com/jhoicas/erp-api/internal/domain/entity"

// Entry definición estática de un permiso del catálogo.
type Entry struct {
	Name   string
	NameAr string
	Module string
}

// catalog es la lista versionada de permisos, agrupada por módulo.
// Cambiarla implica revisar los tests de derivación de roles.
var catalog = []Entry{
	// main
	{"dashboard.view", "عرض لوحة التحكم", entity.ModuleMain},
	{"notifications.view", "عرض الإشعارات", entity.ModuleMain},
	{"profile.view", "عرض الملف الشخصي", entity.ModuleMain},
	{"profile.edit", "تعديل الملف الشخصي", entity.ModuleMain},

	// inventory
	{"inventory.view", "عرض المخزون", entity.ModuleInventory},
	{"inventory.products.view", "عرض المنتجات", entity.ModuleInventory},
	{"inventory.products.add", "إضافة منتج", entity.ModuleInventory},
	{"inventory.products.edit", "تعديل منتج", entity.ModuleInventory},
	{"inventory.products.delete", "حذف منتج", entity.ModuleInventory},
	{"inventory.categories.view", "عرض التصنيفات", entity.ModuleInventory},
	{"inventory.categories.manage", "إدارة التصنيفات", entity.ModuleInventory},
	{"inventory.warehouses.view", "عرض المستودعات", entity.ModuleInventory},
	{"inventory.warehouses.manage", "إدارة المستودعات", entity.ModuleInventory},
	{"inventory.stock.adjust", "تسوية المخزون", entity.ModuleInventory},
	{"inventory.stock.transfer", "تحويل المخزون", entity.ModuleInventory},

	// sales
	{"sales.view", "عرض المبيعات", entity.ModuleSales},
	{"sales.invoices.add", "إضافة فاتورة مبيعات", entity.ModuleSales},
	{"sales.invoices.edit", "تعديل فاتورة مبيعات", entity.ModuleSales},
	{"sales.invoices.delete", "حذف فاتورة مبيعات", entity.ModuleSales},
	{"sales.customers.view", "عرض العملاء", entity.ModuleSales},
	{"sales.customers.manage", "إدارة العملاء", entity.ModuleSales},
	{"sales.returns.manage", "إدارة مرتجعات المبيعات", entity.ModuleSales},
	{"sales.pos.access", "الوصول إلى نقطة البيع", entity.ModuleSales},

	// purchases
	{"purchases.view", "عرض المشتريات", entity.ModulePurchases},
	{"purchases.invoices.add", "إضافة فاتورة مشتريات", entity.ModulePurchases},
	{"purchases.invoices.edit", "تعديل فاتورة مشتريات", entity.ModulePurchases},
	{"purchases.invoices.delete", "حذف فاتورة مشتريات", entity.ModulePurchases},
	{"purchases.suppliers.view", "عرض الموردين", entity.ModulePurchases},
	{"purchases.suppliers.manage", "إدارة الموردين", entity.ModulePurchases},
	{"purchases.returns.manage", "إدارة مرتجعات المشتريات", entity.ModulePurchases},

	// accounting
	{"accounting.view", "عرض المحاسبة", entity.ModuleAccounting},
	{"accounting.accounts.manage", "إدارة دليل الحسابات", entity.ModuleAccounting},
	{"accounting.journal.view", "عرض القيود", entity.ModuleAccounting},
	{"accounting.journal.add", "إضافة قيد", entity.ModuleAccounting},
	{"accounting.journal.post", "ترحيل القيود", entity.ModuleAccounting},
	{"accounting.payments.manage", "إدارة المدفوعات", entity.ModuleAccounting},
	{"accounting.tax.view", "عرض الضرائب", entity.ModuleAccounting},

	// reports
	{"reports.view", "عرض التقارير", entity.ModuleReports},
	{"reports.sales", "تقارير المبيعات", entity.ModuleReports},
	{"reports.purchases", "تقارير المشتريات", entity.ModuleReports},
	{"reports.inventory", "تقارير المخزون", entity.ModuleReports},
	{"reports.financial", "التقارير المالية", entity.ModuleReports},
	{"reports.export", "تصدير التقارير", entity.ModuleReports},

	// settings
	{"settings.view", "عرض الإعدادات", entity.ModuleSettings},
	{"settings.company.edit", "تعديل بيانات الشركة", entity.ModuleSettings},
	{"settings.branches.manage", "إدارة الفروع", entity.ModuleSettings},
	{"settings.users.view", "عرض المستخدمين", entity.ModuleSettings},
	{"settings.users.manage", "إدارة المستخدمين", entity.ModuleSettings},
	{"settings.roles.manage", "إدارة الأدوار", entity.ModuleSettings},
	{"settings.backup", "النسخ الاحتياطي", entity.ModuleSettings},
}

// Modules devuelve los módulos del catálogo en orden de aparición.
func Modules() []string {
	return []string{
		entity.ModuleMain,
		entity.ModuleInventory,
		entity.ModuleSales,
		entity.ModulePurchases,
		entity.ModuleAccounting,
		entity.ModuleReports,
		entity.ModuleSettings,
	}
}

// Catalog devuelve una copia del catálogo fijo.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogNames devuelve los nombres del catálogo en orden.
func CatalogNames() []string {
	names := make([]string, 0, len(catalog))
	for _, e := range catalog {
		names = append(names, e.Name)
	}
	return names
}
