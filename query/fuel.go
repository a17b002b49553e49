// Copyright (c) 2025 Superchain
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

// TransactionType is the Fuel transaction kind.
type TransactionType string

const (
	TxUnknown TransactionType = "unknown"
	TxScript  TransactionType = "script"
	TxCreate  TransactionType = "create"
	TxMint    TransactionType = "mint"
	TxUpgrade TransactionType = "upgrade"
	TxUpload  TransactionType = "upload"
)

// ReceiptType is the Fuel receipt kind.
type ReceiptType string

const (
	ReceiptCall         ReceiptType = "Call"
	ReceiptReturn       ReceiptType = "Return"
	ReceiptReturnData   ReceiptType = "ReturnData"
	ReceiptPanic        ReceiptType = "Panic"
	ReceiptRevert       ReceiptType = "Revert"
	ReceiptLog          ReceiptType = "Log"
	ReceiptLogData      ReceiptType = "LogData"
	ReceiptTransfer     ReceiptType = "Transfer"
	ReceiptTransferOut  ReceiptType = "TransferOut"
	ReceiptScriptResult ReceiptType = "ScriptResult"
	ReceiptMessageOut   ReceiptType = "MessageOut"
	ReceiptMint         ReceiptType = "Mint"
	ReceiptBurn         ReceiptType = "Burn"
)

// OrderType is the Spark order side.
type OrderType string

const (
	OrderBuy  OrderType = "buy"
	OrderSell OrderType = "sell"
)

// OrderChangeType is the Spark order state transition.
type OrderChangeType string

const (
	OrderOpen   OrderChangeType = "open"
	OrderCancel OrderChangeType = "cancel"
	OrderMatch  OrderChangeType = "match"
)

// GetFuelBlocksRequest selects Fuel block headers.
type GetFuelBlocksRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	DaBlockNumberGTE *uint64 `json:"da_block_number__gte,omitempty"`
	DaBlockNumberLTE *uint64 `json:"da_block_number__lte,omitempty"`
}

// GetFuelLogsRequest selects Fuel log receipts.
type GetFuelLogsRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	IDIn List  `json:"id__in,omitempty"`
	RaIn Uints `json:"ra__in,omitempty"`
	RbIn Uints `json:"rb__in,omitempty"`
}

// GetFuelTxsRequest selects Fuel transactions.
type GetFuelTxsRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	TransactionTypeIn        List `json:"transaction_type__in,omitempty"`
	MetadataContractIDIn     List `json:"metadata_contract_id__in,omitempty"`
	InputContractContractIDs List `json:"input_contract_contract_id__in,omitempty"`
	MintAssetIDIn            List `json:"mint_asset_id__in,omitempty"`

	MintAmountLTE *uint64 `json:"mint_amount__lte,omitempty"`
	MintAmountGTE *uint64 `json:"mint_amount__gte,omitempty"`
}

// GetFuelReceiptsRequest selects Fuel receipts.
type GetFuelReceiptsRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	ReceiptTypeIn List `json:"receipt_type__in,omitempty"`
}

// GetSparkOrderRequest selects Spark orderbook changes.
type GetSparkOrderRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	OrderIDIn   List `json:"order_id__in,omitempty"`
	OrderTypeIn List `json:"order_type__in,omitempty"`
	StateTypeIn List `json:"state_type__in,omitempty"`
	UserIn      List `json:"user__in,omitempty"`
	OwnerIn     List `json:"owner__in,omitempty"`
	AssetIn     List `json:"asset__in,omitempty"`
	AddressIn   List `json:"address__in,omitempty"`
}

// GetUtxoRequest selects unspent transaction outputs. The lower block bound
// defaults to open so the stream follows new outputs in real time.
type GetUtxoRequest struct {
	Chains    Chains `json:"chains"`
	FromBlock Bound  `json:"from_block"`
	ToBlock   Bound  `json:"to_block"`

	UnspentAt Bound `json:"unspent_at"`

	AddressIn List `json:"address__in,omitempty"`
}
