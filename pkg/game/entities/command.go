package entities

// Code names an effect the command interpreter knows how to run
type Code string

const (
	CodeBattle     Code = "BATTLE"
	CodeGold       Code = "GOLD"
	CodeShop       Code = "SHOP"
	CodeRecruit    Code = "RECRUIT"
	CodeShrine     Code = "SHRINE"
	CodeTrap       Code = "TRAP"
	CodeEraseEvent Code = "ERASE_EVENT"
	CodeMessage    Code = "MESSAGE"
	CodeLog        Code = "LOG"
	CodeGiveItem   Code = "GIVE_ITEM"
)

// StockKind separates consumables from equipment in shop stock
type StockKind string

const (
	StockItem      StockKind = "item"
	StockEquipment StockKind = "equipment"
)

// StockEntry is one thing offered by a shop
type StockEntry struct {
	ID   string    `json:"id"`
	Kind StockKind `json:"kind"`
}

// Recruit is a creature offered to join the party
type Recruit struct {
	Species string `json:"species"`
	Name    string `json:"name"`
	Level   int    `json:"level"`
	MaxHP   int    `json:"maxHp"`
	Cost    int    `json:"cost"`
}

// Command is one effect descriptor in an event's command list.
// Only the fields relevant to Code are set.
type Command struct {
	Code   Code         `json:"code"`
	Text   string       `json:"text,omitempty"`
	Amount int          `json:"amount,omitempty"`
	ItemID string       `json:"id,omitempty"`
	Troop  []string     `json:"troop,omitempty"`
	Stock  []StockEntry `json:"stock,omitempty"`
	Offers []Recruit    `json:"offers,omitempty"`
}

// Battle starts a fight against the listed enemy species
func Battle(troop []string) Command {
	return Command{Code: CodeBattle, Troop: troop}
}

// Gold grants gold to the party
func Gold(amount int) Command {
	return Command{Code: CodeGold, Amount: amount}
}

// Shop opens a shop with the given stock
func Shop(stock []StockEntry) Command {
	return Command{Code: CodeShop, Stock: stock}
}

// RecruitOffer presents creatures that may join the party
func RecruitOffer(offers []Recruit) Command {
	return Command{Code: CodeRecruit, Offers: offers}
}

// Shrine restores the party
func Shrine() Command {
	return Command{Code: CodeShrine}
}

// Trap springs a trap on the party
func Trap() Command {
	return Command{Code: CodeTrap}
}

// Erase removes the running event from the floor
func Erase() Command {
	return Command{Code: CodeEraseEvent}
}

// Message shows text to the player
func Message(text string) Command {
	return Command{Code: CodeMessage, Text: text}
}

// Log writes text to the message log without interrupting play
func Log(text string) Command {
	return Command{Code: CodeLog, Text: text}
}

// GiveItem adds amount copies of an item to the inventory
func GiveItem(id string, amount int) Command {
	if amount <= 0 {
		amount = 1
	}
	return Command{Code: CodeGiveItem, ItemID: id, Amount: amount}
}
