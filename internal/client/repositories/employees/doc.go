// Package employees is a direct PostgreSQL store for the funcionarios table.
// It satisfies client.EmployeeStore, so the employee controller can run
// against the database the provider fronts instead of its REST gateway.
package employees
