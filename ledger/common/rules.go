// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

// ValidationRuleFunc represents a single validation rule. Rules are closed
// over the transaction and ledger state they validate.
type ValidationRuleFunc func() error

// RunValidationRules runs the provided validation rules in order and returns
// the first error encountered. Later rules may assume everything checked by
// earlier rules.
func RunValidationRules(rules ...ValidationRuleFunc) error {
	for _, rule := range rules {
		if err := rule(); err != nil {
			return err
		}
	}
	return nil
}

// CheckAccount verifies that the account for the provided identity exists,
// that its current nonce equals the provided nonce, and that its balance
// covers the provided amount
func CheckAccount(
	ls LedgerState,
	id EntityId,
	nonce uint64,
	amount uint64,
) error {
	acct, ok := ls.Accounts().Lookup(id)
	if !ok {
		return AccountNotFoundError{Id: id}
	}
	if acct.Nonce() != nonce {
		return WrongNonceError{
			Provided: nonce,
			Expected: acct.Nonce(),
		}
	}
	if acct.Balance() < amount {
		return InsufficientBalanceError{
			Balance:  acct.Balance(),
			Required: amount,
		}
	}
	return nil
}
