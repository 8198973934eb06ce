package domain

import "time"

type CarStatus string

const (
	CarAvailable   CarStatus = "Available"
	CarRented      CarStatus = "Rented"
	CarMaintenance CarStatus = "Maintenance"
)

// Car is read-only for the booking engine; fleet management owns its lifecycle.
type Car struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Plate     string           `json:"plate"`
	Type      string           `json:"type"`
	Image     string           `json:"image,omitempty"`
	Status    CarStatus        `json:"status"`
	Price24h  int64            `json:"price24h"`
	Pricing   map[string]int64 `json:"pricing,omitempty"` // package label -> daily rate
	PartnerID string           `json:"partnerId,omitempty"`
}

type Driver struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Image     string `json:"image,omitempty"`
	DailyRate int64  `json:"dailyRate"`
}

type Customer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	IDCardNumber string `json:"idCardNumber,omitempty"`
	Address      string `json:"address,omitempty"`
}

// Partner is an external vehicle owner entitled to a revenue split.
type Partner struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Phone               string `json:"phone"`
	BankAccount         string `json:"bankAccount,omitempty"`
	RevenueSharePercent int64  `json:"revenueSharePercent"`
	Notes               string `json:"notes,omitempty"`
}

// HighSeason defines a closed date interval carrying a per-day surcharge.
type HighSeason struct {
	ID            string    `json:"id"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	PriceIncrease int64     `json:"priceIncrease"`
}

type FuelLevel string

const (
	FuelFull          FuelLevel = "Full"
	FuelThreeQuarters FuelLevel = "3-4"
	FuelHalf          FuelLevel = "1-2"
	FuelQuarter       FuelLevel = "1-4"
	FuelEmpty         FuelLevel = "Empty"
)

// VehicleChecklist is the handover record captured at pickup.
// SpeedometerImage is mandatory before a checklist can be saved.
type VehicleChecklist struct {
	Odometer         int       `json:"odometer"`
	FuelLevel        FuelLevel `json:"fuelLevel"`
	SpeedometerImage string    `json:"speedometerImage"`
	FrontImage       string    `json:"frontImage,omitempty"`
	BackImage        string    `json:"backImage,omitempty"`
	LeftImage        string    `json:"leftImage,omitempty"`
	RightImage       string    `json:"rightImage,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CheckedAt        int64     `json:"checkedAt"` // epoch millis
	CheckedBy        string    `json:"checkedBy"`
}

type Booking struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt"` // epoch millis

	CarID         string `json:"carId"`
	DriverID      string `json:"driverId,omitempty"`
	CustomerID    string `json:"customerId,omitempty"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	StartDate        time.Time  `json:"startDate"`
	EndDate          time.Time  `json:"endDate"`
	ActualReturnDate *time.Time `json:"actualReturnDate,omitempty"`

	PackageType string `json:"packageType"`
	Destination string `json:"destination"` // Dalam Kota | Luar Kota

	BasePrice     int64  `json:"basePrice"`
	DriverFee     int64  `json:"driverFee"`
	HighSeasonFee int64  `json:"highSeasonFee"`
	DeliveryFee   int64  `json:"deliveryFee"`
	OvertimeFee   int64  `json:"overtimeFee"`
	TotalPrice    int64  `json:"totalPrice"`
	AmountPaid    int64  `json:"amountPaid"`
	Notes         string `json:"notes,omitempty"`

	SecurityDepositType        string `json:"securityDepositType,omitempty"` // Uang | Barang
	SecurityDepositValue       int64  `json:"securityDepositValue,omitempty"`
	SecurityDepositDescription string `json:"securityDepositDescription,omitempty"`
	SecurityDepositImage       string `json:"securityDepositImage,omitempty"`

	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`

	Checklist *VehicleChecklist `json:"checklist,omitempty"`
}

type TransactionType string

const (
	TxIncome  TransactionType = "Income"
	TxExpense TransactionType = "Expense"
)

type TransactionStatus string

const (
	TxPaid    TransactionStatus = "Paid"
	TxPending TransactionStatus = "Pending"
)

type Transaction struct {
	ID           string            `json:"id"`
	Date         time.Time         `json:"date"`
	Amount       int64             `json:"amount"`
	Type         TransactionType   `json:"type"`
	Category     string            `json:"category"`
	Description  string            `json:"description,omitempty"`
	BookingID    string            `json:"bookingId,omitempty"`
	ReceiptImage string            `json:"receiptImage,omitempty"`
	Status       TransactionStatus `json:"status"`
	RelatedID    string            `json:"relatedId,omitempty"` // driver or partner
}

// AppSettings holds the configurable pieces the booking engine reads.
// Branding and invoice text are passed through for the UI only.
type AppSettings struct {
	RentalPackages []string `json:"rentalPackages"`
	CompanyName    string   `json:"companyName,omitempty"`
	CompanyAddress string   `json:"companyAddress,omitempty"`
	CompanyPhone   string   `json:"companyPhone,omitempty"`
	InvoiceFooter  string   `json:"invoiceFooter,omitempty"`
}

// DefaultPackage returns the first configured package label.
func (s AppSettings) DefaultPackage() string {
	if len(s.RentalPackages) > 0 {
		return s.RentalPackages[0]
	}
	return ""
}

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}
