// File: services/conversation/prompts.go
package conversation

// taskDescription frames the assistant's job for the chat model.
const taskDescription = `You are a hotel booking assistant.
Gather all information required from the user to make the booking.
You need to gather the following information: date of arrival, duration of stay, number of guests,
if they want to have breakfast included, the name of the main guest and the email address of the main guest.
Don't be picky regarding date formats. If you don't know the answer to a user's question say: "I don't know".
At the end of the booking process you MUST show a booking summary with all booking information
and ask the user to confirm the booking.`

// hotelInformation is the context block about the hotel itself.
const hotelInformation = `Name of the hotel: Hotel Royal
Address: Main square, Madrid, Spain
Check in time: 2pm, check out time: 10am.
Room sizes: the hotel offers double bed standard rooms exclusively. The maximal number of guests for such a room is 3.
Breakfast: $10 per guest per night. The breakfast offers several juices, bread, coffee and boiled eggs.
Facilities: a small gym and sauna.
Animals are not allowed.
Price per night: about $100. An accurate price will be given at the end of the booking process.`

// structuredDataQuery asks the model to summarize the known facts as a
// two-column pipe-separated table. The extractor is tolerant of drift, but
// the stricter the model sticks to this shape the better.
const structuredDataQuery = `List all booking-relevant information already provided by the user as table with exactly two columns
and 7 rows of the form:
        Date of arrival | <date of arrival>
        Duration of stay | <number of nights>
        Number of guests | <number of guests>
        Name of main guest | <name of main guest>
        Email address | <email address>
        Breakfast included? | <(yes|no)>
        Did the user confirm a booking summary? | <(yes|no)>

        For any value not provided yet by me yet write [not provided] into the respective cells of the table.

        Use the pipe symbol (|) as separator between keys and values.
        Remember: The table must have exactly two columns!`

// greeting is the canned opener shown as the first assistant turn.
const greeting = "Hi there! Would you like to book a hotel room? When do you arrive?"

// apologyMessage substitutes for the model reply when the completion call fails.
const apologyMessage = "Sorry. There was an issue transmitting the message. Could you repeat please?"

// Check-in and check-out times shown in the booking summary.
const (
	checkInTime  = "2pm"
	checkOutTime = "10am"
)
